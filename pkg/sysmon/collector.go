// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sysmon

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// cpuSampleInterval is how long CPU percentages are sampled over. Kept
// short so single-shot reports stay snappy.
const cpuSampleInterval = 200 * time.Millisecond

// SystemCollector reads live telemetry through gopsutil.
type SystemCollector struct{}

var _ Collector = SystemCollector{}

func NewSystemCollector() SystemCollector { return SystemCollector{} }

func (SystemCollector) Memory(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, fmt.Errorf("read memory status: %w", err)
	}
	return MemoryStats{
		Total:       vm.Total,
		Used:        vm.Used,
		Free:        vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (SystemCollector) Host(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, fmt.Errorf("read host info: %w", err)
	}
	return HostInfo{
		Hostname:     info.Hostname,
		Platform:     info.Platform,
		OSVersion:    info.PlatformVersion,
		KernelArch:   info.KernelArch,
		Uptime:       time.Duration(info.Uptime) * time.Second,
		ProcessCount: info.Procs,
	}, nil
}

func (SystemCollector) CPU(ctx context.Context) (CPUStats, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return CPUStats{}, fmt.Errorf("read cpu info: %w", err)
	}
	counts, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return CPUStats{}, fmt.Errorf("count cpus: %w", err)
	}
	stats := CPUStats{Cores: counts}
	if len(infos) > 0 {
		stats.Brand = infos[0].ModelName
		stats.MHz = infos[0].Mhz
	}
	usage, err := cpu.PercentWithContext(ctx, cpuSampleInterval, true)
	if err != nil {
		// Load sampling is best effort; the static facts are still
		// worth reporting.
		slog.Debug("cpu usage sampling failed", "err", err)
		return stats, nil
	}
	stats.UsagePerCPU = usage
	return stats, nil
}

func (SystemCollector) Processes(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		info, err := snapshotProcess(ctx, p)
		if err != nil {
			// Processes exit mid-scan and some are unreadable without
			// privileges; skip them like every other process viewer.
			slog.Debug("skipping process", "pid", p.Pid, "err", err)
			continue
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RSS > out[j].RSS })
	return out, nil
}

func (SystemCollector) Process(ctx context.Context, pid int32) (ProcessInfo, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("open process %d: %w", pid, err)
	}
	info, err := snapshotProcess(ctx, p)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("inspect process %d: %w", pid, err)
	}
	return info, nil
}

func snapshotProcess(ctx context.Context, p *process.Process) (ProcessInfo, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, err
	}
	info := ProcessInfo{PID: p.Pid, Name: name}
	if m, err := p.MemoryInfoWithContext(ctx); err == nil && m != nil {
		info.RSS = m.RSS
	}
	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		info.CPUPercent = pct
	}
	return info, nil
}

func (SystemCollector) NetIO(ctx context.Context) ([]NetIOStats, error) {
	counters, err := gnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("read interface counters: %w", err)
	}
	out := make([]NetIOStats, 0, len(counters))
	for _, c := range counters {
		out = append(out, NetIOStats{
			Name:        c.Name,
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (SystemCollector) Connections(ctx context.Context) ([]ConnInfo, error) {
	conns, err := gnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		return nil, fmt.Errorf("read connections: %w", err)
	}
	out := make([]ConnInfo, 0, len(conns))
	for _, c := range conns {
		out = append(out, ConnInfo{
			Local:  fmt.Sprintf("%s:%d", c.Laddr.IP, c.Laddr.Port),
			Remote: fmt.Sprintf("%s:%d", c.Raddr.IP, c.Raddr.Port),
			Status: c.Status,
			PID:    c.Pid,
		})
	}
	return out, nil
}
