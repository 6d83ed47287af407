// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package mpu6050

// DefaultAddress is the MPU6050 I2C slave address with the AD0 pin low.
// Pull AD0 high and the device answers on 0x69 instead.
const DefaultAddress uint16 = 0x68

// chipID is the value the WHO_AM_I register reports for an MPU6050.
const chipID byte = 0x68

// Register addresses (MPU-6000/MPU-6050 register map, revision 4.2).
const (
	regXGOffsUsrH byte = 0x13 // gyro offset user registers, H/L pairs
	regYGOffsUsrH byte = 0x15
	regZGOffsUsrH byte = 0x17

	regGyroConfig  byte = 0x1B
	regAccelConfig byte = 0x1C

	regMotThr byte = 0x1F
	regMotDur byte = 0x20

	regIntPinCfg byte = 0x37
	regIntEnable byte = 0x38
	regIntStatus byte = 0x3A

	regAccelXOutH byte = 0x3B
	regTempOutH   byte = 0x41
	regGyroXOutH  byte = 0x43

	regSignalPathReset byte = 0x68
	regMotDetectCtrl   byte = 0x69

	regPwrMgmt1 byte = 0x6B
	regWhoAmI   byte = 0x75
)

// field names a contiguous bit range inside a register byte.
// Start is the LSB index of the field, so the field occupies
// bits [Start, Start+Length).
type field struct {
	Start  byte
	Length byte
}

// PWR_MGMT_1 bits.
const (
	bitDeviceReset byte = 7
	bitSleep       byte = 6
	bitTempDis     byte = 3
)

var fieldClkSel = field{Start: 0, Length: 3}

// GYRO_CONFIG / ACCEL_CONFIG bits.
const (
	bitXSelfTest byte = 7
	bitYSelfTest byte = 6
	bitZSelfTest byte = 5
)

var (
	fieldGyroFSSel  = field{Start: 3, Length: 2}
	fieldAccelFSSel = field{Start: 3, Length: 2}
	fieldAccelHPF   = field{Start: 0, Length: 3}
)

// INT_STATUS bits.
const bitMotionInt byte = 6

// Temperature conversion constants, datasheet revision 4.2.
const (
	tempSensitivity = 340.0
	tempOffset      = 36.53
)

// AccelRange selects the accelerometer full-scale range.
type AccelRange byte

const (
	AccelRange2G AccelRange = iota
	AccelRange4G
	AccelRange8G
	AccelRange16G
)

// accelSensitivity maps AccelRange to LSB per g.
var accelSensitivity = [4]float64{16384.0, 8192.0, 4096.0, 2048.0}

// Sensitivity returns the scale factor in counts per g for the range.
func (r AccelRange) Sensitivity() float64 {
	return accelSensitivity[r&0x03]
}

// GyroRange selects the gyroscope full-scale range.
type GyroRange byte

const (
	GyroRange250Deg GyroRange = iota
	GyroRange500Deg
	GyroRange1000Deg
	GyroRange2000Deg
)

// gyroSensitivity maps GyroRange to LSB per °/s.
var gyroSensitivity = [4]float64{131.0, 65.5, 32.8, 16.4}

// Sensitivity returns the scale factor in counts per °/s for the range.
func (r GyroRange) Sensitivity() float64 {
	return gyroSensitivity[r&0x03]
}

// ClockSource selects the device clock reference (PWR_MGMT_1 CLKSEL).
// The datasheet recommends one of the gyro PLLs over the internal
// oscillator for stability.
type ClockSource byte

const (
	ClockInternal8MHz ClockSource = iota
	ClockPLLGyroX
	ClockPLLGyroY
	ClockPLLGyroZ
	ClockExternal32K
	ClockExternal19MHz
	clockReserved
	ClockStop
)

// AccelHPF selects the accelerometer digital high-pass filter mode.
type AccelHPF byte

const (
	AccelHPFReset AccelHPF = iota
	AccelHPF5Hz
	AccelHPF2_5Hz
	AccelHPF1_25Hz
	AccelHPF0_63Hz
	AccelHPFHold AccelHPF = 7
)
