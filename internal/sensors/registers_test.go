package sensors

import "testing"

func TestLookupRegister(t *testing.T) {
	info, ok := LookupRegister("0x1B")
	if !ok {
		t.Fatal("GYRO_CONFIG not found")
	}
	if info.Name != "GYRO_CONFIG" {
		t.Errorf("name got=%q want=GYRO_CONFIG", info.Name)
	}
	if info.Access != "RW" {
		t.Errorf("access got=%q want=RW", info.Access)
	}

	var fsSel *BitField
	for i := range info.BitFields {
		if info.BitFields[i].Name == "FS_SEL" {
			fsSel = &info.BitFields[i]
		}
	}
	if fsSel == nil {
		t.Fatal("FS_SEL field missing from GYRO_CONFIG")
	}
	if fsSel.Bits != "4:3" {
		t.Errorf("FS_SEL bits got=%q want=4:3", fsSel.Bits)
	}

	if _, ok := LookupRegister("0xFF"); ok {
		t.Error("lookup of 0xFF succeeded, want miss")
	}
}

func TestRegisterMapReadOnlyOutputs(t *testing.T) {
	// The sensor output registers must never be marked writable, the
	// debug tool uses Access to refuse writes.
	for _, addr := range []string{"0x3B", "0x41", "0x43", "0x75", "0x3A"} {
		info, ok := LookupRegister(addr)
		if !ok {
			t.Errorf("register %s missing from map", addr)
			continue
		}
		if info.Access != "R" {
			t.Errorf("register %s (%s) access got=%q want=R", addr, info.Name, info.Access)
		}
	}
}
