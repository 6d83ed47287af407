package mpu6050

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// mockBus is an in-memory register file behind the Transport interface.
// A transaction with a read buffer counts as one read; one without
// counts as one write. gyroFn, when set, synthesizes the six gyro output
// bytes on every read of GYRO_XOUT_H.
type mockBus struct {
	regs   map[byte]byte
	reads  int
	writes int

	gyroFn func() (x, y, z int16)
	err    error
}

func newMockBus() *mockBus {
	return &mockBus{regs: map[byte]byte{regWhoAmI: chipID}}
}

func (m *mockBus) Tx(w, r []byte) error {
	if m.err != nil {
		return m.err
	}
	reg := w[0]
	if len(r) == 0 {
		m.writes++
		for i, b := range w[1:] {
			m.regs[reg+byte(i)] = b
		}
		return nil
	}
	m.reads++
	if reg == regGyroXOutH && m.gyroFn != nil {
		x, y, z := m.gyroFn()
		putWord(m.regs, regGyroXOutH, x)
		putWord(m.regs, regGyroXOutH+2, y)
		putWord(m.regs, regGyroXOutH+4, z)
	}
	for i := range r {
		r[i] = m.regs[reg+byte(i)]
	}
	return nil
}

func putWord(regs map[byte]byte, reg byte, v int16) {
	regs[reg] = byte(uint16(v) >> 8)
	regs[reg+1] = byte(uint16(v))
}

func newTestDevice(bus *mockBus) *Device {
	d := New(bus)
	d.sleep = func(time.Duration) {}
	return d
}

func TestInit(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if bus.regs[regPwrMgmt1] != 0x01 {
		t.Fatalf("PWR_MGMT_1=%#02x want 0x01", bus.regs[regPwrMgmt1])
	}
}

func TestInit_InvalidChipID(t *testing.T) {
	bus := newMockBus()
	bus.regs[regWhoAmI] = 0x71
	d := newTestDevice(bus)

	err := d.Init()
	if !errors.Is(err, ErrInvalidChipID) {
		t.Fatalf("err=%v want ErrInvalidChipID", err)
	}

	// Identity mismatch is fatal to Init only; raw access still works.
	if _, err := d.ReadByte(regWhoAmI); err != nil {
		t.Fatalf("ReadByte after failed Init: %v", err)
	}
}

func TestWriteBit_TransactionCounts(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	if err := d.WriteBit(regPwrMgmt1, bitSleep, true); err != nil {
		t.Fatalf("WriteBit: %v", err)
	}
	if bus.reads != 1 || bus.writes != 1 {
		t.Fatalf("reads=%d writes=%d want 1/1", bus.reads, bus.writes)
	}

	bus.reads, bus.writes = 0, 0
	if err := d.WriteBits(regAccelConfig, 3, 2, 2); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if bus.reads != 1 || bus.writes != 1 {
		t.Fatalf("reads=%d writes=%d want 1/1", bus.reads, bus.writes)
	}
}

func TestWriteBits_PreservesOutsideField(t *testing.T) {
	bus := newMockBus()
	bus.regs[regAccelConfig] = 0b1110_0111
	d := newTestDevice(bus)

	if err := d.SetAccelRange(AccelRange8G); err != nil {
		t.Fatalf("SetAccelRange: %v", err)
	}
	if got := bus.regs[regAccelConfig]; got != 0b1111_0111 {
		t.Fatalf("ACCEL_CONFIG=%#08b want 0b11110111", got)
	}
}

func TestWriteWord_SingleTransaction(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	if err := d.WriteWord(regXGOffsUsrH, 0xBEEF); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	if bus.writes != 1 || bus.reads != 0 {
		t.Fatalf("reads=%d writes=%d want 0/1", bus.reads, bus.writes)
	}
	if bus.regs[regXGOffsUsrH] != 0xBE || bus.regs[regXGOffsUsrH+1] != 0xEF {
		t.Fatalf("wrote %#02x %#02x want 0xBE 0xEF", bus.regs[regXGOffsUsrH], bus.regs[regXGOffsUsrH+1])
	}
}

func TestSetRange_UpdatesSensitivity(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	putWord(bus.regs, regAccelXOutH, 16384)
	putWord(bus.regs, regAccelXOutH+2, 0)
	putWord(bus.regs, regAccelXOutH+4, 0)

	acc, err := d.Acceleration()
	if err != nil {
		t.Fatalf("Acceleration: %v", err)
	}
	if acc.X != 1.0 {
		t.Fatalf("X=%v want 1.0 at ±2g", acc.X)
	}

	if err := d.SetAccelRange(AccelRange16G); err != nil {
		t.Fatalf("SetAccelRange: %v", err)
	}
	acc, err = d.Acceleration()
	if err != nil {
		t.Fatalf("Acceleration: %v", err)
	}
	if acc.X != 8.0 {
		t.Fatalf("X=%v want 8.0 at ±16g", acc.X)
	}

	if err := d.SetGyroRange(GyroRange500Deg); err != nil {
		t.Fatalf("SetGyroRange: %v", err)
	}
	putWord(bus.regs, regGyroXOutH, 131)
	g, err := d.GyroDeg()
	if err != nil {
		t.Fatalf("GyroDeg: %v", err)
	}
	if g.X != 131.0/65.5 {
		t.Fatalf("X=%v want %v", g.X, 131.0/65.5)
	}
}

func TestTempEnabled_InvertedBit(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	if err := d.SetTempEnabled(true); err != nil {
		t.Fatalf("SetTempEnabled: %v", err)
	}
	if getBit(bus.regs[regPwrMgmt1], bitTempDis) != 0 {
		t.Fatalf("TEMP_DIS set, want clear when enabled")
	}
	on, err := d.TempEnabled()
	if err != nil || !on {
		t.Fatalf("TempEnabled=%v err=%v want true", on, err)
	}

	if err := d.SetTempEnabled(false); err != nil {
		t.Fatalf("SetTempEnabled: %v", err)
	}
	on, err = d.TempEnabled()
	if err != nil || on {
		t.Fatalf("TempEnabled=%v err=%v want false", on, err)
	}
}

func TestSetupMotionDetection_WriteSequence(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	if err := d.SetupMotionDetection(); err != nil {
		t.Fatalf("SetupMotionDetection: %v", err)
	}
	want := map[byte]byte{
		regPwrMgmt1:      0x00,
		regIntPinCfg:     0x20,
		regAccelConfig:   0x01,
		regMotThr:        10,
		regMotDur:        40,
		regMotDetectCtrl: 0x15,
		regIntEnable:     0x40,
	}
	for reg, val := range want {
		if got := bus.regs[reg]; got != val {
			t.Fatalf("reg 0x%02X=%#02x want %#02x", reg, got, val)
		}
	}
	if bus.writes != len(want) {
		t.Fatalf("writes=%d want %d", bus.writes, len(want))
	}

	bus.regs[regIntStatus] = 1 << bitMotionInt
	moved, err := d.MotionDetected()
	if err != nil || !moved {
		t.Fatalf("MotionDetected=%v err=%v want true", moved, err)
	}
}

func TestBusErrorPropagates(t *testing.T) {
	bus := newMockBus()
	bus.err = fmt.Errorf("i2c: remote I/O error")
	d := newTestDevice(bus)

	if _, err := d.ReadByte(regWhoAmI); err == nil {
		t.Fatalf("expected error")
	}
	if err := d.WriteBit(regPwrMgmt1, bitSleep, true); err == nil {
		t.Fatalf("expected error")
	}
}
