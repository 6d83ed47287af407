// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/michaelkamprath/mpu6050/internal/app"
	"github.com/michaelkamprath/mpu6050/internal/config"
)

func main() {
	configPath := flag.String("config", "./mpu6050_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting MPU6050 telemetry console (MQTT → stdout)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsole(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
