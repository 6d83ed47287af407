// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"io"
	"log"

	"github.com/michaelkamprath/mpu6050"
	"github.com/michaelkamprath/mpu6050/internal/config"
)

// Open brings up the MPU6050 described by the global configuration:
// transport, identity check, configured ranges. The returned closer
// releases the I2C bus.
func Open() (*mpu6050.Device, io.Closer, error) {
	cfg := config.Get()

	tr, err := mpu6050.NewI2CTransport(cfg.I2CBus, cfg.I2CAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("IMU: I2C transport (bus %q, addr 0x%02X): %w", cfg.I2CBus, cfg.I2CAddr, err)
	}

	dev := mpu6050.New(tr)
	if err := dev.Init(); err != nil {
		tr.Close()
		return nil, nil, fmt.Errorf("IMU: initialization: %w", err)
	}
	log.Printf("IMU: MPU6050 initialized at 0x%02X", cfg.I2CAddr)

	// Apply configured sensor ranges
	if err := dev.SetAccelRange(mpu6050.AccelRange(cfg.AccelRange)); err != nil {
		tr.Close()
		return nil, nil, fmt.Errorf("IMU: set accel range: %w", err)
	}
	log.Printf("IMU: accelerometer range set to %d (±%dg)", cfg.AccelRange, []int{2, 4, 8, 16}[cfg.AccelRange])

	if err := dev.SetGyroRange(mpu6050.GyroRange(cfg.GyroRange)); err != nil {
		tr.Close()
		return nil, nil, fmt.Errorf("IMU: set gyro range: %w", err)
	}
	log.Printf("IMU: gyroscope range set to %d (±%d°/s)", cfg.GyroRange, []int{250, 500, 1000, 2000}[cfg.GyroRange])

	return dev, tr, nil
}
