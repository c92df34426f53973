// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sysmon gathers the telemetry shown by the monitor commands:
// memory and CPU readings, host and hardware facts, per-process stats and
// network counters. The display layer consumes the Collector interface,
// so reports can be rendered from canned samples in tests.
package sysmon

import (
	"context"
	"time"
)

// MemoryStats is a snapshot of physical memory.
type MemoryStats struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// HostInfo describes the machine and its OS.
type HostInfo struct {
	Hostname     string
	Platform     string
	OSVersion    string
	KernelArch   string
	Uptime       time.Duration
	ProcessCount uint64
}

// CPUStats describes the processor and its current load.
type CPUStats struct {
	Brand       string
	Cores       int
	MHz         float64
	UsagePerCPU []float64 // percent per logical CPU
}

// UsageTotal averages the per-CPU load.
func (c CPUStats) UsageTotal() float64 {
	if len(c.UsagePerCPU) == 0 {
		return 0
	}
	var sum float64
	for _, v := range c.UsagePerCPU {
		sum += v
	}
	return sum / float64(len(c.UsagePerCPU))
}

// ProcessInfo is one process in an enumeration or a single-PID inquiry.
type ProcessInfo struct {
	PID        int32
	Name       string
	RSS        uint64 // resident set size in bytes
	CPUPercent float64
}

// NetIOStats are the traffic counters of one interface.
type NetIOStats struct {
	Name        string
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// ConnInfo is one network connection.
type ConnInfo struct {
	Local  string
	Remote string
	Status string
	PID    int32
}

// Collector is the platform telemetry surface consumed by the display
// layer. Implementations must be safe to call sequentially from a single
// goroutine; no other guarantee is made.
type Collector interface {
	Memory(ctx context.Context) (MemoryStats, error)
	Host(ctx context.Context) (HostInfo, error)
	CPU(ctx context.Context) (CPUStats, error)
	Processes(ctx context.Context) ([]ProcessInfo, error)
	Process(ctx context.Context, pid int32) (ProcessInfo, error)
	NetIO(ctx context.Context) ([]NetIOStats, error)
	Connections(ctx context.Context) ([]ConnInfo, error)
}
