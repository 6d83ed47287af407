package mpu6050

import (
	"math"
	"testing"
)

func TestDecodeWord(t *testing.T) {
	cases := []struct {
		in   []byte
		want int32
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x00, 0x01}, 1},
		{[]byte{0x7F, 0xFF}, 32767},
		{[]byte{0x80, 0x00}, -32768},
		{[]byte{0xFF, 0xFF}, -1},
		{[]byte{0xFE, 0x0C}, -500},
	}
	for _, c := range cases {
		if got := decodeWord(c.in); got != c.want {
			t.Fatalf("decodeWord(%#02x %#02x)=%d want=%d", c.in[0], c.in[1], got, c.want)
		}
	}
}

func TestTemperature(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	// Raw word 0 maps to exactly the datasheet offset.
	temp, err := d.Temperature()
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	if temp != 36.53 {
		t.Fatalf("temp=%v want=36.53", temp)
	}

	// Monotonic in the raw word.
	prev := math.Inf(-1)
	for _, raw := range []int16{-32768, -340, 0, 340, 3400, 32767} {
		putWord(bus.regs, regTempOutH, raw)
		temp, err = d.Temperature()
		if err != nil {
			t.Fatalf("Temperature: %v", err)
		}
		if temp <= prev {
			t.Fatalf("raw=%d temp=%v not increasing past %v", raw, temp, prev)
		}
		prev = temp
	}

	// One spot value: 340 counts is exactly +1°C over the offset.
	putWord(bus.regs, regTempOutH, 340)
	temp, _ = d.Temperature()
	if math.Abs(temp-37.53) > 1e-9 {
		t.Fatalf("temp=%v want=37.53", temp)
	}
}

func TestTiltAngles(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)

	set := func(x, y, z int16) {
		putWord(bus.regs, regAccelXOutH, x)
		putWord(bus.regs, regAccelXOutH+2, y)
		putWord(bus.regs, regAccelXOutH+4, z)
	}

	// Flat and level: 1g straight down the Z axis.
	set(0, 0, 16384)
	roll, pitch, err := d.TiltAngles()
	if err != nil {
		t.Fatalf("TiltAngles: %v", err)
	}
	if math.Abs(roll) > 1e-9 || math.Abs(pitch) > 1e-9 {
		t.Fatalf("roll=%v pitch=%v want 0, 0", roll, pitch)
	}

	// On its side: gravity along Y gives roll = π/2.
	set(0, 16384, 0)
	roll, _, err = d.TiltAngles()
	if err != nil {
		t.Fatalf("TiltAngles: %v", err)
	}
	if math.Abs(roll-math.Pi/2) > 1e-9 {
		t.Fatalf("roll=%v want=%v", roll, math.Pi/2)
	}

	// Nose down: gravity along -X gives pitch = π/2.
	set(-16384, 0, 0)
	_, pitch, err = d.TiltAngles()
	if err != nil {
		t.Fatalf("TiltAngles: %v", err)
	}
	if math.Abs(pitch-math.Pi/2) > 1e-9 {
		t.Fatalf("pitch=%v want=%v", pitch, math.Pi/2)
	}
}

func TestGyroAppliesFineTune(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)
	d.fineTune = RawVec3{X: 3, Y: -2, Z: 1}

	putWord(bus.regs, regGyroXOutH, 128)
	putWord(bus.regs, regGyroXOutH+2, 2)
	putWord(bus.regs, regGyroXOutH+4, -1)

	raw, err := d.readRawGyro()
	if err != nil {
		t.Fatalf("readRawGyro: %v", err)
	}
	if raw != (RawVec3{X: 131, Y: 0, Z: 0}) {
		t.Fatalf("raw=%+v want {131 0 0}", raw)
	}

	g, err := d.GyroDeg()
	if err != nil {
		t.Fatalf("GyroDeg: %v", err)
	}
	if g.X != 1.0 || g.Y != 0 || g.Z != 0 {
		t.Fatalf("g=%+v want {1 0 0} at ±250°/s", g)
	}

	rad, err := d.Gyro()
	if err != nil {
		t.Fatalf("Gyro: %v", err)
	}
	if math.Abs(rad.X-math.Pi/180.0) > 1e-12 {
		t.Fatalf("rad.X=%v want=%v", rad.X, math.Pi/180.0)
	}
}

func TestAccelerationIgnoresFineTune(t *testing.T) {
	bus := newMockBus()
	d := newTestDevice(bus)
	d.fineTune = RawVec3{X: 100, Y: 100, Z: 100}

	putWord(bus.regs, regAccelXOutH, 16384)
	acc, err := d.Acceleration()
	if err != nil {
		t.Fatalf("Acceleration: %v", err)
	}
	if acc.X != 1.0 {
		t.Fatalf("X=%v want 1.0; accel reads must not receive the gyro residual", acc.X)
	}
}
