// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/calibration/main.go
//
// Guided gyro offset calibration for the MPU6050.
//
// The sensor must sit completely still on a stable surface for the
// whole run. Each step averages 1000 samples, adjusts the hardware
// offset registers, and repeats until the residual bias is within
// tolerance (or the step limit is hit).
//
// Output:
//
//	Writes a timestamped JSON file with the final offset registers and
//	the software fine tune values.
//
// Run:
//
//	go run ./cmd/calibration
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/michaelkamprath/mpu6050"
	"github.com/michaelkamprath/mpu6050/internal/config"
	"github.com/michaelkamprath/mpu6050/internal/sensors"
)

// CalibrationResult is the JSON output of a calibration run.
type CalibrationResult struct {
	SchemaVersion int    `json:"schema_version"`
	CalibrationAt string `json:"calibration_at"` // RFC3339

	// Hardware offset registers after calibration (counts)
	GyroOffsets mpu6050.RawVec3 `json:"gyro_offsets"`

	// Software fine tune subtracted from every raw gyro sample (counts)
	GyroFineTune mpu6050.RawVec3 `json:"gyro_fine_tune"`

	Steps       int     `json:"steps"`
	DurationSec float64 `json:"duration_sec"`
}

func main() {
	in := bufio.NewReader(os.Stdin)

	configPath := flag.String("config", "mpu6050_config.txt", "path to configuration file")
	flag.Parse()

	fmt.Println("=== MPU6050 Gyro Offset Calibration ===")
	fmt.Println("Place the sensor on a stable surface and do not touch it during the run.")
	fmt.Println()

	if err := config.InitGlobal(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to load config from %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	dev, closer, err := sensors.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: sensor init failed: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	waitEnter(in, "Press ENTER to start calibration (takes about a minute)...")

	start := time.Now()
	steps := 0
	err = dev.CalibrateGyro(nil, func(step int) {
		steps = step + 1
		fmt.Printf("  step %2d: averaging 1000 samples...\n", step+1)
	})
	if err != nil {
		fatal(err)
	}

	offsets, err := dev.GyroOffsets()
	if err != nil {
		fatal(err)
	}
	fineTune := dev.GyroFineTune()

	res := CalibrationResult{
		SchemaVersion: 1,
		CalibrationAt: time.Now().Format(time.RFC3339),
		GyroOffsets:   offsets,
		GyroFineTune:  fineTune,
		Steps:         steps,
		DurationSec:   time.Since(start).Seconds(),
	}

	if err := writeResult(res); err != nil {
		fatal(err)
	}

	fmt.Println("\nCalibration complete.")
	fmt.Printf("Offsets (counts):   X=%d Y=%d Z=%d\n", offsets.X, offsets.Y, offsets.Z)
	fmt.Printf("Fine tune (counts): X=%d Y=%d Z=%d\n", fineTune.X, fineTune.Y, fineTune.Z)
}

func writeResult(res CalibrationResult) error {
	ts := time.Now().Format("2006-01-02T15-04-05Z07-00")
	name := fmt.Sprintf("%s_gyro_calibration.json", ts)

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, b, 0o644); err != nil {
		return err
	}
	fmt.Printf("\nWrote: %s\n", name)
	return nil
}

func waitEnter(in *bufio.Reader, prompt string) {
	fmt.Print(prompt)
	_, _ = in.ReadString('\n')
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
