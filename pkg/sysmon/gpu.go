// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sysmon

import (
	"context"
	"errors"
)

// ErrGPUUnavailable is returned when no GPU telemetry backend is wired
// in. The display layer turns it into a friendly message rather than a
// failure.
var ErrGPUUnavailable = errors.New("gpu telemetry unavailable")

// GPUDevice is one adapter as reported by a vendor backend.
type GPUDevice struct {
	Name          string
	Vendor        string
	DriverVersion string
	MemoryTotal   uint64
	MemoryUsed    uint64
	Utilization   float64 // percent
	Temperature   float64 // celsius
}

// GPUMonitor is implemented by vendor-library backends (NVML and the
// like). Loading such a library is deployment-specific and lives outside
// this module; NoGPU is the default.
type GPUMonitor interface {
	Devices(ctx context.Context) ([]GPUDevice, error)
}

// NoGPU is the GPUMonitor used when no vendor backend is present.
type NoGPU struct{}

func (NoGPU) Devices(context.Context) ([]GPUDevice, error) {
	return nil, ErrGPUUnavailable
}
