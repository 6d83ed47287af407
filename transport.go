// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package mpu6050

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Transport is the byte bus the driver talks through. Every outgoing
// transaction starts with the register address byte; r, when non-empty,
// receives the bytes read back in the same transaction.
//
// The driver owns the device exclusively: read-modify-write accessors
// issue two transactions that must not be interleaved with other traffic
// to the same device.
type Transport interface {
	Tx(w, r []byte) error
}

// I2CTransport binds an I2C bus and slave address into a Transport.
// periph.io's i2c.Dev does the address framing.
type I2CTransport struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

// NewI2CTransport opens the named I2C bus ("" for the first available)
// via periph.io and returns a transport bound to addr. Use
// DefaultAddress unless the AD0 pin is pulled high.
func NewI2CTransport(busName string, addr uint16) (*I2CTransport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open I2C bus %q: %w", busName, err)
	}
	return &I2CTransport{
		bus: bus,
		dev: i2c.Dev{Bus: bus, Addr: addr},
	}, nil
}

// Tx performs one write or write-then-read transaction.
func (t *I2CTransport) Tx(w, r []byte) error {
	return t.dev.Tx(w, r)
}

// Close releases the underlying bus.
func (t *I2CTransport) Close() error {
	return t.bus.Close()
}
