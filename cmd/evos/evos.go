// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command evos is a single-shot system monitor. Each flag selects one
// report (memory, processes, hardware, network, GPU); --all selects every
// report and --loop repeats the selection at one-second intervals.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/evosrun/evos/pkg/cmdline"
	"github.com/evosrun/evos/pkg/config"
	"github.com/evosrun/evos/pkg/i18n"
	"github.com/evosrun/evos/pkg/sysmon"
	"github.com/evosrun/evos/pkg/tui"
	"github.com/evosrun/evos/pkg/units"
)

const progName = "evos"

const (
	pidMin      = 1
	loopMin     = uint(1)
	loopMax     = uint(65535)
	defaultHost = "127.0.0.1"
)

// monitorCommand binds one report flag to its display routine.
type monitorCommand struct {
	short byte
	desc  string
	run   func(*app, context.Context) error
}

// monitorCommands is the report dispatch table. Every entry becomes a
// boolean flag; --all runs them all.
var monitorCommands = map[string]monitorCommand{
	"perf":     {'p', "show system performance value info.", (*app).showPerformance},
	"sys":      {'s', "show system memory info.", (*app).showSystemMemory},
	"total":    {'t', "show total memory usage.", (*app).showTotalMemory},
	"each":     {'e', "show each process info.", (*app).showProcesses},
	"hardware": {'w', "show PC hardware information.", (*app).showHardware},
	"gpu":      {'g', "show GPU information.", (*app).showGPU},
	"network":  {'n', "show network connections info.", (*app).showConnections},
	"traffic":  {'f', "show network traffic statistics.", (*app).showTraffic},
	"ports":    {'o', "show port usage info.", (*app).showPorts},

	"gpu-advanced": {'G', "show advanced GPU information.", (*app).showGPUAdvanced},
}

// app carries the wired collaborators of one invocation.
type app struct {
	reg   *cmdline.Registry
	col   sysmon.Collector
	gpu   sysmon.GPUMonitor
	tr    *i18n.Translator
	bytes units.Formatter
	color tui.Colorizer
	out   io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	prefs, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(errOut, "warning: ignoring preferences: %v\n", err)
		prefs = config.Default()
	}

	reg := newRegistry(prefs)
	par := cmdline.NewParser(reg, progName)

	if len(args) == 0 {
		fmt.Fprint(out, par.Usage())
		return 0
	}
	if err := par.Parse(args); err != nil {
		fmt.Fprint(errOut, par.Err())
		fmt.Fprint(errOut, par.Usage())
		return 2
	}
	if reg.Exist("help") {
		fmt.Fprint(out, par.Usage())
		return 0
	}
	if reg.Exist("copyright") {
		fmt.Fprint(out, licenseText)
		return 0
	}

	if err := setupLogging(reg, errOut); err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", progName, err)
		return 2
	}

	a, err := newApp(reg, prefs, out)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", progName, err)
		return 2
	}

	if reg.Exist("save-prefs") {
		prefs.ByteUnit = cmdline.Get[int](reg, "type")
		prefs.Language = cmdline.Get[string](reg, "lang")
		prefs.LogLevel = cmdline.Get[string](reg, "log-level")
		if err := prefs.Save(config.DefaultPath()); err != nil {
			fmt.Fprintf(errOut, "warning: saving preferences: %v\n", err)
		}
	}

	if err := a.dispatch(context.Background()); err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", progName, err)
		return 1
	}
	return 0
}

// newRegistry declares the full option set. Persisted preferences seed
// the defaults, so an unset flag means "whatever the prefs say".
func newRegistry(prefs config.Prefs) *cmdline.Registry {
	reg := cmdline.NewRegistry()

	cmdline.Add(reg, "inquire", 'i', "inquire the selected process info.", false, uint64(pidMin))
	cmdline.Add(reg, "loop", 'l', "loop this program from [1-65535] second.", false, loopMin)
	cmdline.Add(reg, "type", 'y', "set the show byte type[0=Auto,1=KB,2=MB,3=GB,4=TB].", false, prefs.ByteUnit)
	cmdline.Add(reg, "lang", 'L', "set the display language[en,zh,es,fr,de,ja].", false, prefs.Language)
	cmdline.AddFlag(reg, "help", '?', "show help message.")
	cmdline.AddFlag(reg, "copyright", 'c', "show copyright and license information.")
	cmdline.AddFlag(reg, "all", 'a', "show all info.")
	cmdline.AddFlag(reg, "port-scan", 'P', "scan ports on specified host.")
	cmdline.Add(reg, "host", 'H', "specify target host for port scan.", false, defaultHost)
	cmdline.Add(reg, "start-port", 'S', "specify start port for port scan.", false, 1)
	cmdline.Add(reg, "end-port", 'E', "specify end port for port scan.", false, 100)
	cmdline.Add(reg, "log-level", cmdline.NoShort, "set the log level[debug,info,warn,error].", false, prefs.LogLevel)
	cmdline.Add(reg, "log-file", cmdline.NoShort, "append logs to file instead of stderr.", false, "")
	cmdline.AddFlag(reg, "save-prefs", cmdline.NoShort, "persist type, lang and log level as defaults.")

	for name, cmd := range monitorCommands {
		cmdline.AddFlag(reg, name, cmd.short, cmd.desc)
	}
	return reg
}

func newApp(reg *cmdline.Registry, prefs config.Prefs, out io.Writer) (*app, error) {
	unit, err := units.ParseByteUnit(cmdline.Get[int](reg, "type"))
	if err != nil {
		return nil, err
	}
	lang, err := i18n.ParseLanguage(cmdline.Get[string](reg, "lang"))
	if err != nil {
		return nil, err
	}
	return &app{
		reg:   reg,
		col:   sysmon.NewSystemCollector(),
		gpu:   sysmon.NoGPU{},
		tr:    i18n.New(lang),
		bytes: units.NewFormatter(unit),
		color: tui.NewColorizer(prefs.Color),
		out:   out,
	}, nil
}

func setupLogging(reg *cmdline.Registry, errOut io.Writer) error {
	var level slog.Level
	switch lvl := cmdline.Get[string](reg, "log-level"); lvl {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %q", lvl)
	}

	w := io.Writer(errOut)
	if path := cmdline.Get[string](reg, "log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// dispatch runs whatever the parsed flags selected, once or in a loop.
func (a *app) dispatch(ctx context.Context) error {
	if a.reg.Exist("inquire") {
		return a.showProcess(ctx, cmdline.Get[uint64](a.reg, "inquire"))
	}

	if !a.reg.Exist("loop") {
		return a.runSelected(ctx)
	}

	count := cmdline.Get[uint](a.reg, "loop")
	if count < loopMin || count > loopMax {
		return fmt.Errorf("loop count out of range [1-65535]: %d", count)
	}
	for left := count; left > 0; left-- {
		clearScreen(a.out)
		if err := a.runSelected(ctx); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "[LEFT TIME]: %d\n", left-1)
		if left > 1 {
			time.Sleep(time.Second)
		}
	}
	return nil
}

// runSelected executes the port scan or the selected reports in stable
// name order.
func (a *app) runSelected(ctx context.Context) error {
	if a.reg.Exist("port-scan") {
		return a.showPortScan(ctx,
			cmdline.Get[string](a.reg, "host"),
			cmdline.Get[int](a.reg, "start-port"),
			cmdline.Get[int](a.reg, "end-port"))
	}

	all := a.reg.Exist("all")
	ran := false
	for _, name := range monitorCommandNames() {
		if !all && !a.reg.Exist(name) {
			continue
		}
		if err := monitorCommands[name].run(a, ctx); err != nil {
			return err
		}
		ran = true
	}
	if !ran {
		slog.Debug("no report selected")
	}
	return nil
}

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}

const licenseText = `[LICENSE]:

Copyright 2026 Evanluo

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
`
