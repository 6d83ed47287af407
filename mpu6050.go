// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package mpu6050 drives the InvenSense MPU6050 6-axis IMU (3-axis
// gyroscope, 3-axis accelerometer, die temperature) over a byte-oriented
// register bus, typically I2C via periph.io.
//
// The driver is synchronous and single-owner: it assumes no other actor
// issues transactions to the device while a call is in flight.
package mpu6050

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidChipID reports that the WHO_AM_I register did not identify an
// MPU6050. Returned (wrapped) by Init only; low-level register access
// stays usable after the mismatch.
var ErrInvalidChipID = errors.New("invalid chip ID")

// Device is the driver handle for one MPU6050.
//
// accelSens and gyroSens cache the counts-per-unit divisor for the
// currently configured ranges; they change only as a side effect of a
// successful Set*Range call. fineTune is the software residual from the
// last gyro calibration, added to every raw gyro sample.
type Device struct {
	bus       Transport
	accelSens float64
	gyroSens  float64
	fineTune  RawVec3

	sleep func(time.Duration)
}

// New returns a Device with the power-on default ranges (±2g, ±250°/s).
// No bus traffic happens until Init or an accessor is called.
func New(t Transport) *Device {
	return NewWithRanges(t, AccelRange2G, GyroRange250Deg)
}

// NewWithRanges returns a Device whose cached sensitivities match the
// given ranges. The ranges themselves are written to the device by Init
// or an explicit Set*Range call.
func NewWithRanges(t Transport, ar AccelRange, gr GyroRange) *Device {
	return &Device{
		bus:       t,
		accelSens: ar.Sensitivity(),
		gyroSens:  gr.Sensitivity(),
		sleep:     time.Sleep,
	}
}

// Init wakes the device, verifies its identity and applies the default
// configuration: ±2g, ±250°/s, accel high-pass filter reset.
func (d *Device) Init() error {
	if err := d.wake(); err != nil {
		return err
	}
	if err := d.verify(); err != nil {
		return err
	}
	if err := d.SetAccelRange(AccelRange2G); err != nil {
		return err
	}
	if err := d.SetGyroRange(GyroRange250Deg); err != nil {
		return err
	}
	return d.SetAccelHPF(AccelHPFReset)
}

// wake clears the sleep bit and selects the X-gyro PLL as clock source in
// one write. The device powers up asleep.
func (d *Device) wake() error {
	if err := d.WriteByte(regPwrMgmt1, 0x01); err != nil {
		return err
	}
	d.sleep(100 * time.Millisecond)
	return nil
}

func (d *Device) verify() error {
	id, err := d.ReadByte(regWhoAmI)
	if err != nil {
		return err
	}
	if id != chipID {
		return fmt.Errorf("WHO_AM_I reported 0x%02X, want 0x%02X: %w", id, chipID, ErrInvalidChipID)
	}
	return nil
}

// Reset triggers a full device reset and waits for it to settle. The
// device comes back asleep (PWR_MGMT_1 resets to 0x40); call Init or
// SetSleepEnabled(false) afterwards.
func (d *Device) Reset() error {
	if err := d.WriteBit(regPwrMgmt1, bitDeviceReset, true); err != nil {
		return err
	}
	d.sleep(100 * time.Millisecond)
	return nil
}

// SetClockSource selects the device clock reference.
func (d *Device) SetClockSource(src ClockSource) error {
	return d.WriteBits(regPwrMgmt1, fieldClkSel.Start, fieldClkSel.Length, byte(src))
}

// ClockSource returns the configured clock reference.
func (d *Device) ClockSource() (ClockSource, error) {
	v, err := d.ReadBits(regPwrMgmt1, fieldClkSel.Start, fieldClkSel.Length)
	return ClockSource(v), err
}

// SetAccelRange writes the accelerometer full-scale range and updates the
// cached sensitivity to the matching table value.
func (d *Device) SetAccelRange(r AccelRange) error {
	if err := d.WriteBits(regAccelConfig, fieldAccelFSSel.Start, fieldAccelFSSel.Length, byte(r)); err != nil {
		return err
	}
	d.accelSens = r.Sensitivity()
	return nil
}

// AccelRange reads the accelerometer full-scale range back from the device.
func (d *Device) AccelRange() (AccelRange, error) {
	v, err := d.ReadBits(regAccelConfig, fieldAccelFSSel.Start, fieldAccelFSSel.Length)
	return AccelRange(v), err
}

// SetGyroRange writes the gyroscope full-scale range and updates the
// cached sensitivity to the matching table value.
func (d *Device) SetGyroRange(r GyroRange) error {
	if err := d.WriteBits(regGyroConfig, fieldGyroFSSel.Start, fieldGyroFSSel.Length, byte(r)); err != nil {
		return err
	}
	d.gyroSens = r.Sensitivity()
	return nil
}

// GyroRange reads the gyroscope full-scale range back from the device.
func (d *Device) GyroRange() (GyroRange, error) {
	v, err := d.ReadBits(regGyroConfig, fieldGyroFSSel.Start, fieldGyroFSSel.Length)
	return GyroRange(v), err
}

// SetAccelHPF configures the accelerometer digital high-pass filter.
func (d *Device) SetAccelHPF(mode AccelHPF) error {
	return d.WriteBits(regAccelConfig, fieldAccelHPF.Start, fieldAccelHPF.Length, byte(mode))
}

// AccelHPF returns the accelerometer high-pass filter mode.
func (d *Device) AccelHPF() (AccelHPF, error) {
	v, err := d.ReadBits(regAccelConfig, fieldAccelHPF.Start, fieldAccelHPF.Length)
	return AccelHPF(v), err
}

// SetSleepEnabled puts the device to sleep or wakes it.
func (d *Device) SetSleepEnabled(enable bool) error {
	return d.WriteBit(regPwrMgmt1, bitSleep, enable)
}

// SleepEnabled reports whether the sleep bit is set.
func (d *Device) SleepEnabled() (bool, error) {
	v, err := d.ReadBit(regPwrMgmt1, bitSleep)
	return v != 0, err
}

// SetTempEnabled enables or disables the temperature sensor. The
// hardware bit stores the disabled state, so the flag is inverted here.
func (d *Device) SetTempEnabled(enable bool) error {
	return d.WriteBit(regPwrMgmt1, bitTempDis, !enable)
}

// TempEnabled reports whether the temperature sensor is enabled.
func (d *Device) TempEnabled() (bool, error) {
	v, err := d.ReadBit(regPwrMgmt1, bitTempDis)
	return v == 0, err
}

// SetAccelXSelfTest enables the accelerometer X-axis self test.
func (d *Device) SetAccelXSelfTest(enable bool) error {
	return d.WriteBit(regAccelConfig, bitXSelfTest, enable)
}

// AccelXSelfTest reports the accelerometer X-axis self test bit.
func (d *Device) AccelXSelfTest() (bool, error) {
	v, err := d.ReadBit(regAccelConfig, bitXSelfTest)
	return v != 0, err
}

// SetAccelYSelfTest enables the accelerometer Y-axis self test.
func (d *Device) SetAccelYSelfTest(enable bool) error {
	return d.WriteBit(regAccelConfig, bitYSelfTest, enable)
}

// AccelYSelfTest reports the accelerometer Y-axis self test bit.
func (d *Device) AccelYSelfTest() (bool, error) {
	v, err := d.ReadBit(regAccelConfig, bitYSelfTest)
	return v != 0, err
}

// SetAccelZSelfTest enables the accelerometer Z-axis self test.
func (d *Device) SetAccelZSelfTest(enable bool) error {
	return d.WriteBit(regAccelConfig, bitZSelfTest, enable)
}

// AccelZSelfTest reports the accelerometer Z-axis self test bit.
func (d *Device) AccelZSelfTest() (bool, error) {
	v, err := d.ReadBit(regAccelConfig, bitZSelfTest)
	return v != 0, err
}

// SetupMotionDetection programs the wake-on-motion engine: push-pull
// active-high latched interrupt pin, 5 Hz accel HPF, motion threshold 10,
// duration 40 ms, decrement/startup settings 0x15, then enables the
// motion interrupt.
func (d *Device) SetupMotionDetection() error {
	steps := []struct {
		reg byte
		val byte
	}{
		{regPwrMgmt1, 0x00},
		{regIntPinCfg, 0x20},
		{regAccelConfig, 0x01},
		{regMotThr, 10},
		{regMotDur, 40},
		{regMotDetectCtrl, 0x15},
		{regIntEnable, 0x40},
	}
	for _, s := range steps {
		if err := d.WriteByte(s.reg, s.val); err != nil {
			return err
		}
	}
	return nil
}

// MotionDetected polls the motion interrupt bit in INT_STATUS.
func (d *Device) MotionDetected() (bool, error) {
	v, err := d.ReadBit(regIntStatus, bitMotionInt)
	return v != 0, err
}

// ReadByte reads one register.
func (d *Device) ReadByte(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.ReadBytes(reg, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadBytes fills buf from consecutive registers starting at reg; the
// device auto-increments the register address internally.
func (d *Device) ReadBytes(reg byte, buf []byte) error {
	if err := d.bus.Tx([]byte{reg}, buf); err != nil {
		return fmt.Errorf("read register 0x%02X: %w", reg, err)
	}
	return nil
}

// WriteByte writes one register.
func (d *Device) WriteByte(reg, value byte) error {
	if err := d.bus.Tx([]byte{reg, value}, nil); err != nil {
		return fmt.Errorf("write register 0x%02X: %w", reg, err)
	}
	return nil
}

// WriteWord writes a 16-bit value high byte first, as a single 3-byte
// bus transaction.
func (d *Device) WriteWord(reg byte, value uint16) error {
	if err := d.bus.Tx([]byte{reg, byte(value >> 8), byte(value)}, nil); err != nil {
		return fmt.Errorf("write word register 0x%02X: %w", reg, err)
	}
	return nil
}

// ReadBit returns bit n of the register as 0 or 1.
func (d *Device) ReadBit(reg, n byte) (byte, error) {
	b, err := d.ReadByte(reg)
	if err != nil {
		return 0, err
	}
	return getBit(b, n), nil
}

// WriteBit sets or clears bit n of the register via read-modify-write.
// The two transactions are not atomic with respect to other bus users.
func (d *Device) WriteBit(reg, n byte, enable bool) error {
	b, err := d.ReadByte(reg)
	if err != nil {
		return err
	}
	setBit(&b, n, enable)
	return d.WriteByte(reg, b)
}

// ReadBits extracts the field [start, start+length) of the register.
func (d *Device) ReadBits(reg, start, length byte) (byte, error) {
	b, err := d.ReadByte(reg)
	if err != nil {
		return 0, err
	}
	return getBits(b, start, length), nil
}

// WriteBits replaces the field [start, start+length) of the register via
// read-modify-write, preserving all bits outside the field.
func (d *Device) WriteBits(reg, start, length, value byte) error {
	b, err := d.ReadByte(reg)
	if err != nil {
		return err
	}
	setBits(&b, start, length, value)
	return d.WriteByte(reg, b)
}
