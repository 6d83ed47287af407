// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

// RegisterInfo describes one register for the debug tooling: name,
// access type, and bit field layout.
type RegisterInfo struct {
	Address     string     `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"` // "R", "W", "RW"
	Default     string     `json:"default,omitempty"`
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// BitField describes one named field inside a register byte.
type BitField struct {
	Bits        string `json:"bits"` // "6" or "4:3" (MSB:LSB)
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// MPU6050RegisterMap returns metadata for the registers this driver
// touches, for display in the register debug tool.
func MPU6050RegisterMap() []RegisterInfo {
	return []RegisterInfo{
		// Gyro offset trim (user registers)
		{Address: "0x13", Name: "XG_OFFS_USRH", Description: "Gyroscope X-Axis Offset High Byte", Access: "RW"},
		{Address: "0x14", Name: "XG_OFFS_USRL", Description: "Gyroscope X-Axis Offset Low Byte", Access: "RW"},
		{Address: "0x15", Name: "YG_OFFS_USRH", Description: "Gyroscope Y-Axis Offset High Byte", Access: "RW"},
		{Address: "0x16", Name: "YG_OFFS_USRL", Description: "Gyroscope Y-Axis Offset Low Byte", Access: "RW"},
		{Address: "0x17", Name: "ZG_OFFS_USRH", Description: "Gyroscope Z-Axis Offset High Byte", Access: "RW"},
		{Address: "0x18", Name: "ZG_OFFS_USRL", Description: "Gyroscope Z-Axis Offset Low Byte", Access: "RW"},

		// Configuration
		{Address: "0x1B", Name: "GYRO_CONFIG", Description: "Gyroscope Configuration", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "XG_ST", Description: "X Gyro self-test", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "YG_ST", Description: "Y Gyro self-test", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "ZG_ST", Description: "Z Gyro self-test", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4:3", Name: "FS_SEL", Description: "Gyro Full Scale Range", Values: "0=±250°/s, 1=±500°/s, 2=±1000°/s, 3=±2000°/s"},
			}},
		{Address: "0x1C", Name: "ACCEL_CONFIG", Description: "Accelerometer Configuration", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "XA_ST", Description: "X Accel self-test", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "YA_ST", Description: "Y Accel self-test", Values: "0=Disabled, 1=Enabled"},
				{Bits: "5", Name: "ZA_ST", Description: "Z Accel self-test", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4:3", Name: "AFS_SEL", Description: "Accel Full Scale Range", Values: "0=±2g, 1=±4g, 2=±8g, 3=±16g"},
				{Bits: "2:0", Name: "ACCEL_HPF", Description: "Accel Digital High Pass Filter", Values: "0=Reset, 1=5Hz, 2=2.5Hz, 3=1.25Hz, 4=0.63Hz, 7=Hold"},
			}},
		{Address: "0x1F", Name: "MOT_THR", Description: "Motion Detection Threshold", Access: "RW", Default: "0x00"},
		{Address: "0x20", Name: "MOT_DUR", Description: "Motion Detection Duration (1 ms/LSB)", Access: "RW", Default: "0x00"},

		// Interrupt configuration
		{Address: "0x37", Name: "INT_PIN_CFG", Description: "INT Pin / Bypass Enable Configuration", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "INT_LEVEL", Description: "INT pin active low", Values: "0=Active high, 1=Active low"},
				{Bits: "6", Name: "INT_OPEN", Description: "INT pin open drain", Values: "0=Push-pull, 1=Open drain"},
				{Bits: "5", Name: "LATCH_INT_EN", Description: "Latch INT pin", Values: "0=50us pulse, 1=Latch until cleared"},
				{Bits: "4", Name: "INT_RD_CLEAR", Description: "Clear INT on any read", Values: "0=Status read only, 1=Any read"},
				{Bits: "1", Name: "I2C_BYPASS_EN", Description: "I2C bypass enable", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x38", Name: "INT_ENABLE", Description: "Interrupt Enable", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6", Name: "MOT_EN", Description: "Motion detection interrupt", Values: "0=Disabled, 1=Enabled"},
				{Bits: "4", Name: "FIFO_OFLOW_EN", Description: "FIFO overflow interrupt", Values: "0=Disabled, 1=Enabled"},
				{Bits: "0", Name: "DATA_RDY_EN", Description: "Data ready interrupt", Values: "0=Disabled, 1=Enabled"},
			}},
		{Address: "0x3A", Name: "INT_STATUS", Description: "Interrupt Status", Access: "R", Default: "0x00",
			BitFields: []BitField{
				{Bits: "6", Name: "MOT_INT", Description: "Motion detection interrupt status", Values: ""},
				{Bits: "4", Name: "FIFO_OFLOW_INT", Description: "FIFO overflow interrupt status", Values: ""},
				{Bits: "0", Name: "DATA_RDY_INT", Description: "Data ready interrupt status", Values: ""},
			}},

		// Sensor data (read-only)
		{Address: "0x3B", Name: "ACCEL_XOUT_H", Description: "Accelerometer X-Axis High Byte", Access: "R"},
		{Address: "0x3C", Name: "ACCEL_XOUT_L", Description: "Accelerometer X-Axis Low Byte", Access: "R"},
		{Address: "0x3D", Name: "ACCEL_YOUT_H", Description: "Accelerometer Y-Axis High Byte", Access: "R"},
		{Address: "0x3E", Name: "ACCEL_YOUT_L", Description: "Accelerometer Y-Axis Low Byte", Access: "R"},
		{Address: "0x3F", Name: "ACCEL_ZOUT_H", Description: "Accelerometer Z-Axis High Byte", Access: "R"},
		{Address: "0x40", Name: "ACCEL_ZOUT_L", Description: "Accelerometer Z-Axis Low Byte", Access: "R"},
		{Address: "0x41", Name: "TEMP_OUT_H", Description: "Temperature High Byte", Access: "R"},
		{Address: "0x42", Name: "TEMP_OUT_L", Description: "Temperature Low Byte", Access: "R"},
		{Address: "0x43", Name: "GYRO_XOUT_H", Description: "Gyroscope X-Axis High Byte", Access: "R"},
		{Address: "0x44", Name: "GYRO_XOUT_L", Description: "Gyroscope X-Axis Low Byte", Access: "R"},
		{Address: "0x45", Name: "GYRO_YOUT_H", Description: "Gyroscope Y-Axis High Byte", Access: "R"},
		{Address: "0x46", Name: "GYRO_YOUT_L", Description: "Gyroscope Y-Axis Low Byte", Access: "R"},
		{Address: "0x47", Name: "GYRO_ZOUT_H", Description: "Gyroscope Z-Axis High Byte", Access: "R"},
		{Address: "0x48", Name: "GYRO_ZOUT_L", Description: "Gyroscope Z-Axis Low Byte", Access: "R"},

		// Motion detection control
		{Address: "0x68", Name: "SIGNAL_PATH_RESET", Description: "Signal Path Reset", Access: "RW", Default: "0x00"},
		{Address: "0x69", Name: "MOT_DETECT_CTRL", Description: "Motion Detection Control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "5:4", Name: "ACCEL_ON_DELAY", Description: "Accelerometer wake-up delay", Values: "0-3 ms added to 4 ms startup"},
				{Bits: "3:2", Name: "FF_COUNT", Description: "Free-fall counter decrement", Values: "0=Reset, 1-3=decrement rate"},
				{Bits: "1:0", Name: "MOT_COUNT", Description: "Motion counter decrement", Values: "0=Reset, 1-3=decrement rate"},
			}},

		// Power management
		{Address: "0x6B", Name: "PWR_MGMT_1", Description: "Power Management 1", Access: "RW", Default: "0x40",
			BitFields: []BitField{
				{Bits: "7", Name: "DEVICE_RESET", Description: "Device reset", Values: "1=Reset device"},
				{Bits: "6", Name: "SLEEP", Description: "Sleep mode", Values: "0=Awake, 1=Sleep"},
				{Bits: "5", Name: "CYCLE", Description: "Cycle mode", Values: "0=Disabled, 1=Cycle"},
				{Bits: "3", Name: "TEMP_DIS", Description: "Temperature sensor", Values: "0=Enabled, 1=Disabled"},
				{Bits: "2:0", Name: "CLKSEL", Description: "Clock source", Values: "0=Internal 8MHz, 1=PLL X gyro, 2=PLL Y gyro, 3=PLL Z gyro"},
			}},

		// Device identification
		{Address: "0x75", Name: "WHO_AM_I", Description: "Device ID (should be 0x68)", Access: "R", Default: "0x68"},
	}
}

// LookupRegister finds the metadata entry for an address string like
// "0x1B". Returns false when the address is not in the map.
func LookupRegister(address string) (RegisterInfo, bool) {
	for _, info := range MPU6050RegisterMap() {
		if info.Address == address {
			return info, true
		}
	}
	return RegisterInfo{}, false
}
