// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"log"
	"math"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/michaelkamprath/mpu6050/internal/config"
	"github.com/michaelkamprath/mpu6050/internal/imu"
	"github.com/michaelkamprath/mpu6050/internal/sensors"
)

// RunProducer reads the sensor on a fixed interval and publishes
// readings and the derived pose to MQTT.
func RunProducer() error {
	log.Println("starting MPU6050 telemetry producer")

	cfg := config.Get()

	dev, closer, err := sensors.Open()
	if err != nil {
		return err
	}
	defer closer.Close()

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)

	log.Println("connected to MQTT, starting publish loop")

	ticker := time.NewTicker(time.Duration(cfg.SampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		accel, err := dev.Acceleration()
		if err != nil {
			log.Printf("error reading acceleration: %v", err)
			continue
		}
		gyro, err := dev.GyroDeg()
		if err != nil {
			log.Printf("error reading gyro: %v", err)
			continue
		}
		temp, err := dev.Temperature()
		if err != nil {
			log.Printf("error reading temperature: %v", err)
			continue
		}
		roll, pitch, err := dev.TiltAngles()
		if err != nil {
			log.Printf("error reading tilt angles: %v", err)
			continue
		}

		reading := imu.Reading{Accel: accel, Gyro: gyro, TempC: temp}
		payload, err := json.Marshal(reading)
		if err != nil {
			log.Printf("reading marshal error: %v", err)
			continue
		}
		client.Publish(cfg.TopicIMU, 0, false, payload)

		pose := imu.Pose{
			Roll:  roll * 180.0 / math.Pi,
			Pitch: pitch * 180.0 / math.Pi,
		}
		payload, err = json.Marshal(pose)
		if err != nil {
			log.Printf("pose marshal error: %v", err)
			continue
		}
		client.Publish(cfg.TopicPose, 0, false, payload)
	}
	return nil
}
