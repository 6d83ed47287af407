// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package mpu6050

import "math"

// Vec3 is a 3-axis reading in physical units.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RawVec3 is a 3-axis reading in raw counts.
type RawVec3 struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// decodeWord combines two bytes into a big-endian two's-complement
// 16-bit sample, widened to int32 so the sign extension cannot overflow.
func decodeWord(b []byte) int32 {
	word := int32(b[0])<<8 | int32(b[1])
	if word >= 0x8000 {
		word -= 0x10000
	}
	return word
}

// readRawVector decodes 3 consecutive word pairs starting at reg.
func (d *Device) readRawVector(reg byte) (RawVec3, error) {
	var buf [6]byte
	if err := d.ReadBytes(reg, buf[:]); err != nil {
		return RawVec3{}, err
	}
	return RawVec3{
		X: decodeWord(buf[0:2]),
		Y: decodeWord(buf[2:4]),
		Z: decodeWord(buf[4:6]),
	}, nil
}

// readRawGyro is readRawVector plus the calibration fine-tune residual,
// applied component-wise before any unit conversion.
func (d *Device) readRawGyro() (RawVec3, error) {
	v, err := d.readRawVector(regGyroXOutH)
	if err != nil {
		return RawVec3{}, err
	}
	v.X += d.fineTune.X
	v.Y += d.fineTune.Y
	v.Z += d.fineTune.Z
	return v, nil
}

// Acceleration returns the accelerometer reading in g.
func (d *Device) Acceleration() (Vec3, error) {
	raw, err := d.readRawVector(regAccelXOutH)
	if err != nil {
		return Vec3{}, err
	}
	return raw.scale(d.accelSens), nil
}

// GyroDeg returns the gyroscope reading in °/s.
func (d *Device) GyroDeg() (Vec3, error) {
	raw, err := d.readRawGyro()
	if err != nil {
		return Vec3{}, err
	}
	return raw.scale(d.gyroSens), nil
}

// Gyro returns the gyroscope reading in rad/s.
func (d *Device) Gyro() (Vec3, error) {
	v, err := d.GyroDeg()
	if err != nil {
		return Vec3{}, err
	}
	const rad = math.Pi / 180.0
	return Vec3{X: v.X * rad, Y: v.Y * rad, Z: v.Z * rad}, nil
}

// Temperature returns the die temperature in °C.
func (d *Device) Temperature() (float64, error) {
	var buf [2]byte
	if err := d.ReadBytes(regTempOutH, buf[:]); err != nil {
		return 0, err
	}
	return float64(decodeWord(buf[:]))/tempSensitivity + tempOffset, nil
}

// TiltAngles estimates roll and pitch in radians from the accelerometer.
// There is no yaw: the MPU6050 carries no heading reference.
//
// roll = atan2(y, sqrt(x²+z²)), pitch = atan2(−x, sqrt(y²+z²))
// (NXP AN3461, equations 28 and 29).
func (d *Device) TiltAngles() (roll, pitch float64, err error) {
	acc, err := d.Acceleration()
	if err != nil {
		return 0, 0, err
	}
	roll = math.Atan2(acc.Y, math.Sqrt(acc.X*acc.X+acc.Z*acc.Z))
	pitch = math.Atan2(-acc.X, math.Sqrt(acc.Y*acc.Y+acc.Z*acc.Z))
	return roll, pitch, nil
}

func (v RawVec3) scale(sensitivity float64) Vec3 {
	return Vec3{
		X: float64(v.X) / sensitivity,
		Y: float64(v.Y) / sensitivity,
		Z: float64(v.Z) / sensitivity,
	}
}
