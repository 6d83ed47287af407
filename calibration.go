// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package mpu6050

import (
	"math"
	"time"
)

const (
	// maxCalibrationSteps bounds the offset search; calibration returns
	// normally even if the means never settle inside the tolerance band.
	maxCalibrationSteps = 20

	// calibrationTolerance is the per-axis mean magnitude, in raw counts,
	// below which an axis counts as converged. At ±250°/s that is about
	// 0.011°/s of residual bias.
	calibrationTolerance = 1.5

	calibrationSamples = 1000
	settlingSamples    = 100
	samplePeriod       = 2 * time.Millisecond
)

// GyroOffsets reads the three hardware gyro offset registers.
func (d *Device) GyroOffsets() (RawVec3, error) {
	var buf [2]byte
	var offsets RawVec3

	if err := d.ReadBytes(regXGOffsUsrH, buf[:]); err != nil {
		return RawVec3{}, err
	}
	offsets.X = decodeWord(buf[:])
	if err := d.ReadBytes(regYGOffsUsrH, buf[:]); err != nil {
		return RawVec3{}, err
	}
	offsets.Y = decodeWord(buf[:])
	if err := d.ReadBytes(regZGOffsUsrH, buf[:]); err != nil {
		return RawVec3{}, err
	}
	offsets.Z = decodeWord(buf[:])
	return offsets, nil
}

// SetGyroOffsets writes the three hardware gyro offset registers, each
// as one 16-bit word transaction.
func (d *Device) SetGyroOffsets(x, y, z int16) error {
	if err := d.WriteWord(regXGOffsUsrH, uint16(x)); err != nil {
		return err
	}
	if err := d.WriteWord(regYGOffsUsrH, uint16(y)); err != nil {
		return err
	}
	return d.WriteWord(regZGOffsUsrH, uint16(z))
}

// GyroFineTune returns the software residual captured by the last
// calibration run. It lives only in memory and is lost on restart.
func (d *Device) GyroFineTune() RawVec3 {
	return d.fineTune
}

// ResetGyroFineTune zeroes the software residual without touching the
// hardware offset registers.
func (d *Device) ResetGyroFineTune() {
	d.fineTune = RawVec3{}
}

// CalibrateGyro drives the hardware gyro offset registers until the mean
// of many stationary samples sits within ±1.5 counts of zero on every
// axis, then captures whatever residual remains as the software
// fine-tune offset. The sensor must be stationary and level for the
// whole run.
//
// delay blocks for the given duration between samples; nil uses
// time.Sleep. progress, when non-nil, is invoked once per completed step
// with the step index; it is a notification only and cannot influence
// the loop.
//
// Each step averages 1000 samples after discarding 100 for settling, so
// a full run takes tens of seconds. If the means never converge within
// 20 steps the call still returns nil, leaving the best offsets found
// and no fine-tune residual; a bus error aborts immediately with the
// offsets in whatever state the last successful write produced.
func (d *Device) CalibrateGyro(delay func(time.Duration), progress func(step int)) error {
	if delay == nil {
		delay = d.sleep
	}

	if err := d.SetGyroOffsets(0, 0, 0); err != nil {
		return err
	}
	d.fineTune = RawVec3{}

	converged := false
	for step := 0; !converged && step < maxCalibrationSteps; step++ {
		mean, err := d.gyroMean(delay)
		if err != nil {
			return err
		}

		// Step each out-of-tolerance axis by mean/4 (at least one count)
		// toward zero; axes already inside the band are left alone.
		offsets, err := d.GyroOffsets()
		if err != nil {
			return err
		}
		if math.Abs(mean.X) > calibrationTolerance {
			offsets.X -= offsetStep(mean.X)
		}
		if math.Abs(mean.Y) > calibrationTolerance {
			offsets.Y -= offsetStep(mean.Y)
		}
		if math.Abs(mean.Z) > calibrationTolerance {
			offsets.Z -= offsetStep(mean.Z)
		}
		if err := d.SetGyroOffsets(int16(offsets.X), int16(offsets.Y), int16(offsets.Z)); err != nil {
			return err
		}

		if progress != nil {
			progress(step)
		}

		if math.Abs(mean.X) < calibrationTolerance &&
			math.Abs(mean.Y) < calibrationTolerance &&
			math.Abs(mean.Z) < calibrationTolerance {
			converged = true
			// The discrete offset registers cannot cancel the last
			// fraction of a count; absorb it in software.
			d.fineTune = RawVec3{
				X: -int32(mean.X),
				Y: -int32(mean.Y),
				Z: -int32(mean.Z),
			}
		}
	}
	return nil
}

// offsetStep converts an out-of-tolerance mean into a signed integer
// offset adjustment: sign(mean) * max(|mean|/4, 1), truncated.
func offsetStep(mean float64) int32 {
	step := math.Max(math.Abs(mean)/4.0, 1.0)
	if mean < 0 {
		step = -step
	}
	return int32(step)
}

// gyroMean discards 100 settling samples and then averages 1000 raw gyro
// readings, 2 ms apart. The readings include the current fine-tune
// residual, which is zero during calibration until convergence.
func (d *Device) gyroMean(delay func(time.Duration)) (Vec3, error) {
	for i := 0; i < settlingSamples; i++ {
		if _, err := d.readRawGyro(); err != nil {
			return Vec3{}, err
		}
		delay(samplePeriod)
	}

	var sum RawVec3
	for i := 0; i < calibrationSamples; i++ {
		v, err := d.readRawGyro()
		if err != nil {
			return Vec3{}, err
		}
		sum.X += v.X
		sum.Y += v.Y
		sum.Z += v.Z
		delay(samplePeriod)
	}
	return Vec3{
		X: float64(sum.X) / calibrationSamples,
		Y: float64(sum.Y) / calibrationSamples,
		Z: float64(sum.Z) / calibrationSamples,
	}, nil
}
