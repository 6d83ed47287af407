// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/michaelkamprath/mpu6050/internal/app"
	"github.com/michaelkamprath/mpu6050/internal/config"
	"github.com/michaelkamprath/mpu6050/internal/sensors"
)

func main() {
	configPath := flag.String("config", "mpu6050_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting MPU6050 register debug tool")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dev, closer, err := sensors.Open()
	if err != nil {
		log.Fatalf("sensor init failed: %v", err)
	}
	defer closer.Close()

	srv := app.NewRegisterDebugServer(dev)

	http.HandleFunc("/ws", srv.HandleWS)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/register_debug.html")
	})

	addr := fmt.Sprintf(":%d", config.Get().WebServerPort)
	log.Printf("Register debug tool listening on %s", addr)
	log.Printf("Open http://localhost%s in your browser", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
