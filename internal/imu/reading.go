package imu

import "github.com/michaelkamprath/mpu6050"

// Reading is a single physical-unit sample published over MQTT.
type Reading struct {
	Accel mpu6050.Vec3 `json:"accel"`  // g
	Gyro  mpu6050.Vec3 `json:"gyro"`   // °/s
	TempC float64      `json:"temp_c"` // die temperature
}

// Pose is the tilt estimate derived from the accelerometer, in degrees.
// There is no yaw: the MPU6050 has no heading reference.
type Pose struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
}
