// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/evosrun/evos/pkg/sysmon"
	"github.com/evosrun/evos/pkg/tui"
	"github.com/evosrun/evos/pkg/units"
)

const (
	// maxProcessRows caps the per-process listing at the heaviest
	// consumers; a full dump is noise on any busy machine.
	maxProcessRows = 30
	// maxConnRows caps the connection listing the same way.
	maxConnRows = 50

	progressWidth = 30
	nameWidth     = 30
)

// monitorCommandNames returns the dispatch table keys sorted, so report
// order is stable across runs.
func monitorCommandNames() []string {
	names := make([]string, 0, len(monitorCommands))
	for name := range monitorCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *app) section(key string) {
	fmt.Fprintf(a.out, "\n[%s]:\n", a.color.Header(a.tr.T(key)))
}

// showPerformance prints overall CPU and memory load with progress bars.
func (a *app) showPerformance(ctx context.Context) error {
	cpu, err := a.col.CPU(ctx)
	if err != nil {
		return fmt.Errorf("collect cpu: %w", err)
	}
	mem, err := a.col.Memory(ctx)
	if err != nil {
		return fmt.Errorf("collect memory: %w", err)
	}

	a.section("system_performance")
	total := cpu.UsageTotal()
	fmt.Fprintf(a.out, "%s %s\n",
		tui.LeftAlign(a.tr.T("cpu_usage")+":", 20),
		a.color.Grade(tui.ProgressBar(total, progressWidth), total))
	fmt.Fprintf(a.out, "%s %s\n",
		tui.LeftAlign(a.tr.T("memory_usage")+":", 20),
		a.color.Grade(tui.ProgressBar(mem.UsedPercent, progressWidth), mem.UsedPercent))
	for i, pct := range cpu.UsagePerCPU {
		fmt.Fprintf(a.out, "%s %s\n",
			tui.LeftAlign(fmt.Sprintf("CPU %d:", i), 20),
			a.color.Grade(tui.ProgressBar(pct, progressWidth), pct))
	}
	return nil
}

// showSystemMemory prints the physical memory breakdown.
func (a *app) showSystemMemory(ctx context.Context) error {
	mem, err := a.col.Memory(ctx)
	if err != nil {
		return fmt.Errorf("collect memory: %w", err)
	}

	a.section("system_memory")
	rows := []struct{ key, val string }{
		{"total_physical_memory", a.bytes.Bytes(mem.Total)},
		{"used_physical_memory", a.bytes.Bytes(mem.Used)},
		{"free_physical_memory", a.bytes.Bytes(mem.Free)},
		{"memory_usage", units.FormatPercent(mem.UsedPercent, 0)},
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%s %s\n", tui.LeftAlign(a.tr.T(r.key)+":", 26), r.val)
	}
	return nil
}

// showTotalMemory sums resident memory across all processes.
func (a *app) showTotalMemory(ctx context.Context) error {
	procs, err := a.col.Processes(ctx)
	if err != nil {
		return fmt.Errorf("collect processes: %w", err)
	}

	var total uint64
	for _, p := range procs {
		total += p.RSS
	}

	a.section("total_memory")
	fmt.Fprintf(a.out, "%s %s (%d processes)\n",
		tui.LeftAlign(a.tr.T("process_memory")+":", 26), a.bytes.Bytes(total), len(procs))
	return nil
}

// showProcesses lists the heaviest processes by resident memory.
func (a *app) showProcesses(ctx context.Context) error {
	procs, err := a.col.Processes(ctx)
	if err != nil {
		return fmt.Errorf("collect processes: %w", err)
	}
	if len(procs) > maxProcessRows {
		procs = procs[:maxProcessRows]
	}

	a.section("each_process")
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, []string{
			strconv.Itoa(int(p.PID)),
			tui.Truncate(p.Name, nameWidth),
			a.bytes.Bytes(p.RSS),
			units.FormatPercent(p.CPUPercent, 0),
		})
	}
	headers := []string{a.tr.T("process_pid"), a.tr.T("process_name"), a.tr.T("process_memory"), a.tr.T("cpu_usage")}
	fmt.Fprint(a.out, tui.Table(headers, rows))
	return nil
}

// showProcess prints a single-PID inquiry.
func (a *app) showProcess(ctx context.Context, pid uint64) error {
	p, err := a.col.Process(ctx, int32(pid))
	if err != nil {
		return fmt.Errorf("inquire pid %d: %w", pid, err)
	}

	a.section("each_process")
	fmt.Fprintf(a.out, "%s %d\n", tui.LeftAlign(a.tr.T("process_pid")+":", 12), p.PID)
	fmt.Fprintf(a.out, "%s %s\n", tui.LeftAlign(a.tr.T("process_name")+":", 12), p.Name)
	fmt.Fprintf(a.out, "%s %s\n", tui.LeftAlign(a.tr.T("process_memory")+":", 12), a.bytes.Bytes(p.RSS))
	fmt.Fprintf(a.out, "%s %s\n", tui.LeftAlign(a.tr.T("cpu_usage")+":", 12), units.FormatPercent(p.CPUPercent, 0))
	return nil
}

// showHardware prints static machine facts.
func (a *app) showHardware(ctx context.Context) error {
	host, err := a.col.Host(ctx)
	if err != nil {
		return fmt.Errorf("collect host: %w", err)
	}
	cpu, err := a.col.CPU(ctx)
	if err != nil {
		return fmt.Errorf("collect cpu: %w", err)
	}
	mem, err := a.col.Memory(ctx)
	if err != nil {
		return fmt.Errorf("collect memory: %w", err)
	}

	a.section("hardware_info")
	rows := []struct{ key, val string }{
		{"hostname", host.Hostname},
		{"platform", fmt.Sprintf("%s %s", host.Platform, host.OSVersion)},
		{"cpu_architecture", host.KernelArch},
		{"cpu_brand", cpu.Brand},
		{"number_of_processors", fmt.Sprintf("%d @ %s", cpu.Cores, units.FormatFrequency(cpu.MHz))},
		{"total_physical_memory", a.bytes.Bytes(mem.Total)},
		{"uptime", host.Uptime.Truncate(time.Second).String()},
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%s %s\n", tui.LeftAlign(a.tr.T(r.key)+":", 26), r.val)
	}
	return nil
}

// showGPU prints adapter telemetry, or a notice when no backend exists.
func (a *app) showGPU(ctx context.Context) error {
	devs, err := a.gpu.Devices(ctx)
	if errors.Is(err, sysmon.ErrGPUUnavailable) {
		a.section("gpu_info")
		fmt.Fprintf(a.out, "%s\n", a.color.Dim(a.tr.T("gpu_unavailable")))
		return nil
	}
	if err != nil {
		return fmt.Errorf("collect gpu: %w", err)
	}

	a.section("gpu_info")
	for i, d := range devs {
		fmt.Fprintf(a.out, "GPU %d: %s (%s, driver %s)\n", i, d.Name, d.Vendor, d.DriverVersion)
		fmt.Fprintf(a.out, "  %s %s / %s\n", tui.LeftAlign(a.tr.T("process_memory")+":", 14),
			a.bytes.Bytes(d.MemoryUsed), a.bytes.Bytes(d.MemoryTotal))
		fmt.Fprintf(a.out, "  %s %s\n", tui.LeftAlign(a.tr.T("utilization")+":", 14),
			a.color.Grade(units.FormatPercent(d.Utilization, 0), d.Utilization))
		fmt.Fprintf(a.out, "  %s %s\n", tui.LeftAlign(a.tr.T("temperature")+":", 14),
			units.FormatTemperature(d.Temperature))
	}
	return nil
}

// showGPUAdvanced adds utilization and memory bars to the adapter view.
func (a *app) showGPUAdvanced(ctx context.Context) error {
	devs, err := a.gpu.Devices(ctx)
	if errors.Is(err, sysmon.ErrGPUUnavailable) {
		a.section("gpu_info")
		fmt.Fprintf(a.out, "%s\n", a.color.Dim(a.tr.T("gpu_unavailable")))
		return nil
	}
	if err != nil {
		return fmt.Errorf("collect gpu: %w", err)
	}

	a.section("gpu_info")
	for i, d := range devs {
		fmt.Fprintf(a.out, "GPU %d: %s (%s, driver %s)\n", i, d.Name, d.Vendor, d.DriverVersion)
		var memPct float64
		if d.MemoryTotal > 0 {
			memPct = float64(d.MemoryUsed) / float64(d.MemoryTotal) * 100
		}
		fmt.Fprintf(a.out, "  %s %s %s / %s\n", tui.LeftAlign(a.tr.T("process_memory")+":", 14),
			a.color.Grade(tui.ProgressBar(memPct, progressWidth), memPct),
			a.bytes.Bytes(d.MemoryUsed), a.bytes.Bytes(d.MemoryTotal))
		fmt.Fprintf(a.out, "  %s %s\n", tui.LeftAlign(a.tr.T("utilization")+":", 14),
			a.color.Grade(tui.ProgressBar(d.Utilization, progressWidth), d.Utilization))
		fmt.Fprintf(a.out, "  %s %s\n", tui.LeftAlign(a.tr.T("temperature")+":", 14),
			units.FormatTemperature(d.Temperature))
	}
	return nil
}

// showPorts lists local listening ports.
func (a *app) showPorts(ctx context.Context) error {
	conns, err := a.col.Connections(ctx)
	if err != nil {
		return fmt.Errorf("collect connections: %w", err)
	}

	a.section("port_scan")
	rows := make([][]string, 0)
	for _, c := range conns {
		if c.Status != "LISTEN" {
			continue
		}
		rows = append(rows, []string{c.Local, a.tr.T("port_open"), strconv.Itoa(int(c.PID))})
	}
	fmt.Fprint(a.out, tui.Table([]string{"Local", "Status", a.tr.T("process_pid")}, rows))
	return nil
}

// showConnections lists active network connections.
func (a *app) showConnections(ctx context.Context) error {
	conns, err := a.col.Connections(ctx)
	if err != nil {
		return fmt.Errorf("collect connections: %w", err)
	}

	a.section("network_info")
	fmt.Fprintf(a.out, "%s %d\n\n", tui.LeftAlign(a.tr.T("connections")+":", 14), len(conns))
	if len(conns) > maxConnRows {
		conns = conns[:maxConnRows]
	}
	rows := make([][]string, 0, len(conns))
	for _, c := range conns {
		rows = append(rows, []string{c.Local, c.Remote, c.Status, strconv.Itoa(int(c.PID))})
	}
	fmt.Fprint(a.out, tui.Table([]string{"Local", "Remote", "Status", a.tr.T("process_pid")}, rows))
	return nil
}

// showTraffic prints per-interface IO counters.
func (a *app) showTraffic(ctx context.Context) error {
	stats, err := a.col.NetIO(ctx)
	if err != nil {
		return fmt.Errorf("collect net io: %w", err)
	}

	a.section("network_info")
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			a.bytes.Bytes(s.BytesSent),
			a.bytes.Bytes(s.BytesRecv),
			strconv.FormatUint(s.PacketsSent, 10),
			strconv.FormatUint(s.PacketsRecv, 10),
		})
	}
	headers := []string{a.tr.T("interface"), a.tr.T("bytes_sent"), a.tr.T("bytes_received"), "Pkts Sent", "Pkts Recv"}
	fmt.Fprint(a.out, tui.Table(headers, rows))
	return nil
}

// showPortScan probes a TCP range and lists the open ports.
func (a *app) showPortScan(ctx context.Context, host string, start, end int) error {
	open, err := sysmon.ScanPorts(ctx, host, start, end)
	if err != nil {
		return err
	}

	a.section("port_scan")
	fmt.Fprintf(a.out, "%s %d-%d\n", host, start, end)
	for _, p := range open {
		fmt.Fprintf(a.out, "  %5d/tcp %s\n", p, a.tr.T("port_open"))
	}
	fmt.Fprintf(a.out, "%d/%d %s\n", len(open), end-start+1, a.tr.T("port_open"))
	return nil
}
