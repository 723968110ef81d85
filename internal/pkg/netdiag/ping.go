// Package netdiag provides a small connectivity check used to verify that
// a freshly applied configuration actually carries traffic.
package netdiag

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"go-netcfg/internal/pkg/logging"
)

// PingResult summarizes one probe run.
type PingResult struct {
	Target     string
	Sent       int
	Received   int
	PacketLoss float64
	AvgRtt     time.Duration
}

// Pinger probes a target with ICMP echo requests in unprivileged UDP mode.
type Pinger struct {
	count   int
	timeout time.Duration
}

// NewPinger creates a pinger sending count probes bounded by timeout.
func NewPinger(count int, timeout time.Duration) *Pinger {
	return &Pinger{count: count, timeout: timeout}
}

// Ping probes the target. A run where every packet is lost is not an
// error; callers decide from PacketLoss.
func (p *Pinger) Ping(ctx context.Context, target string) (*PingResult, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ping target %s: %w", target, err)
	}
	pinger.Count = p.count
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(false)

	logging.WithComponent("netdiag").WithField("target", target).Debug("Starting ping probe")
	if err := pinger.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("ping to %s failed: %w", target, err)
	}

	stats := pinger.Statistics()
	return &PingResult{
		Target:     target,
		Sent:       stats.PacketsSent,
		Received:   stats.PacketsRecv,
		PacketLoss: stats.PacketLoss,
		AvgRtt:     stats.AvgRtt,
	}, nil
}
