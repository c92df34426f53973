// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sysmon

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// scanDialTimeout bounds each connection attempt.
	scanDialTimeout = 500 * time.Millisecond
	// scanWorkers bounds concurrent dials so a wide range does not
	// exhaust file descriptors.
	scanWorkers = 64
)

// ScanPorts probes TCP ports [start, end] on host and returns the open
// ones in ascending order. Closed and filtered ports are simply absent
// from the result; only an invalid range is an error.
func ScanPorts(ctx context.Context, host string, start, end int) ([]int, error) {
	if start < 1 || end > 65535 || start > end {
		return nil, fmt.Errorf("invalid port range %d-%d", start, end)
	}

	var (
		g, ctx2 = errgroup.WithContext(ctx)
		open    = make(chan int, end-start+1)
	)
	g.SetLimit(scanWorkers)
	dialer := &net.Dialer{Timeout: scanDialTimeout}

	for port := start; port <= end; port++ {
		port := port
		g.Go(func() error {
			addr := net.JoinHostPort(host, strconv.Itoa(port))
			conn, err := dialer.DialContext(ctx2, "tcp", addr)
			if err != nil {
				return nil // closed or filtered
			}
			conn.Close()
			open <- port
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(open)

	ports := make([]int, 0, len(open))
	for p := range open {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports, nil
}
