// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/michaelkamprath/mpu6050"
	"github.com/michaelkamprath/mpu6050/internal/sensors"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// RegisterDebugServer serves live register access over a websocket.
type RegisterDebugServer struct {
	dev *mpu6050.Device
}

// NewRegisterDebugServer wraps an initialized device.
func NewRegisterDebugServer(dev *mpu6050.Device) *RegisterDebugServer {
	return &RegisterDebugServer{dev: dev}
}

// registerCmd is a websocket request from the browser.
type registerCmd struct {
	Action  string `json:"action"` // "read", "read_all", "write", "map"
	Address string `json:"addr,omitempty"`
	Value   string `json:"value,omitempty"`
}

// registerResponse is a websocket reply.
type registerResponse struct {
	Type        string                `json:"type"` // "register_data", "register_map", "status", "error"
	Address     string                `json:"addr,omitempty"`
	Value       string                `json:"value,omitempty"`
	Registers   map[string]string     `json:"registers,omitempty"` // for bulk read
	Timestamp   string                `json:"timestamp,omitempty"`
	Message     string                `json:"message,omitempty"`
	RegisterMap []sensors.RegisterInfo `json:"register_map,omitempty"`
}

// HandleWS upgrades the connection and serves register commands until
// the client disconnects.
func (s *RegisterDebugServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("register debug: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("register debug: client connected from %s", r.RemoteAddr)

	for {
		var cmd registerCmd
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("register debug: read error: %v", err)
			}
			return
		}

		resp := s.execute(cmd)
		resp.Timestamp = time.Now().Format(time.RFC3339)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("register debug: write error: %v", err)
			return
		}
	}
}

func (s *RegisterDebugServer) execute(cmd registerCmd) registerResponse {
	switch cmd.Action {
	case "map":
		return registerResponse{
			Type:        "register_map",
			RegisterMap: sensors.MPU6050RegisterMap(),
		}

	case "read":
		reg, err := parseRegisterAddr(cmd.Address)
		if err != nil {
			return errorResponse(err)
		}
		value, err := s.dev.ReadByte(reg)
		if err != nil {
			return errorResponse(err)
		}
		return registerResponse{
			Type:    "register_data",
			Address: cmd.Address,
			Value:   fmt.Sprintf("0x%02X", value),
		}

	case "read_all":
		values := make(map[string]string)
		for _, info := range sensors.MPU6050RegisterMap() {
			reg, err := parseRegisterAddr(info.Address)
			if err != nil {
				continue
			}
			value, err := s.dev.ReadByte(reg)
			if err != nil {
				return errorResponse(err)
			}
			values[info.Address] = fmt.Sprintf("0x%02X", value)
		}
		return registerResponse{
			Type:      "register_data",
			Registers: values,
		}

	case "write":
		reg, err := parseRegisterAddr(cmd.Address)
		if err != nil {
			return errorResponse(err)
		}
		info, known := sensors.LookupRegister(cmd.Address)
		if known && info.Access == "R" {
			return errorResponse(fmt.Errorf("register %s (%s) is read-only", cmd.Address, info.Name))
		}
		value, err := strconv.ParseUint(cmd.Value, 0, 8)
		if err != nil {
			return errorResponse(fmt.Errorf("invalid value %q: %w", cmd.Value, err))
		}
		if err := s.dev.WriteByte(reg, byte(value)); err != nil {
			return errorResponse(err)
		}
		return registerResponse{
			Type:    "status",
			Address: cmd.Address,
			Value:   fmt.Sprintf("0x%02X", byte(value)),
			Message: "written",
		}

	default:
		return errorResponse(fmt.Errorf("unknown action %q", cmd.Action))
	}
}

func parseRegisterAddr(addr string) (byte, error) {
	v, err := strconv.ParseUint(addr, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid register address %q: %w", addr, err)
	}
	return byte(v), nil
}

func errorResponse(err error) registerResponse {
	return registerResponse{Type: "error", Message: err.Error()}
}
