// Package monitor implements health checks against a Lidarr instance:
// connectivity, disk utilisation, queue state and missing albums. The
// resulting report distinguishes warnings from critical findings so front
// ends can pick an exit code.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/lidarrctl/lidarr"
)

// Status is the outcome of a single health check.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Queue statuses counted by the queue check.
const stalledWarningCount = 5

// LidarrAPI captures the client surface the health checks depend on.
type LidarrAPI interface {
	GetSystemStatus(ctx context.Context) (*lidarr.SystemStatus, error)
	GetDiskSpace(ctx context.Context) ([]lidarr.DiskSpace, error)
	GetQueue(ctx context.Context, page, pageSize int) (*lidarr.QueuePage, error)
	GetWanted(ctx context.Context, page, pageSize int, includeArtist bool) (*lidarr.WantedPage, error)
}

// Check is one health check result.
type Check struct {
	Name    string
	Status  Status
	Message string
}

// Report aggregates all health checks for one run.
type Report struct {
	Timestamp time.Time
	Checks    []Check
}

// Status returns the worst status found across all checks.
func (r *Report) Status() Status {
	worst := StatusOK
	for _, check := range r.Checks {
		switch check.Status {
		case StatusCritical:
			return StatusCritical
		case StatusWarning:
			worst = StatusWarning
		}
	}
	return worst
}

// Options tune the health thresholds.
type Options struct {
	// DiskThresholdPercent marks a disk critical when utilisation exceeds it.
	// Utilisation above (threshold - 10) is a warning.
	DiskThresholdPercent float64

	// QueueWarningSize marks the queue as warning when it holds more items.
	QueueWarningSize int
}

// Checker runs health checks against a Lidarr instance.
type Checker struct {
	api    LidarrAPI
	opts   Options
	logger zerolog.Logger
}

// NewChecker creates a health checker.
func NewChecker(api LidarrAPI, opts Options, logger zerolog.Logger) *Checker {
	if opts.DiskThresholdPercent <= 0 {
		opts.DiskThresholdPercent = 90
	}
	if opts.QueueWarningSize <= 0 {
		opts.QueueWarningSize = 50
	}
	return &Checker{api: api, opts: opts, logger: logger}
}

// Run executes every health check and returns the aggregated report. A check
// that cannot reach the server is recorded rather than aborting the run, so
// one failing subsystem does not hide the others.
func (c *Checker) Run(ctx context.Context) *Report {
	report := &Report{Timestamp: time.Now()}

	report.Checks = append(report.Checks, c.checkSystem(ctx))
	report.Checks = append(report.Checks, c.checkDisks(ctx)...)
	report.Checks = append(report.Checks, c.checkQueue(ctx))
	report.Checks = append(report.Checks, c.checkWanted(ctx))

	c.logger.Debug().
		Str("status", string(report.Status())).
		Int("checks", len(report.Checks)).
		Msg("Health check finished")

	return report
}

func (c *Checker) checkSystem(ctx context.Context) Check {
	status, err := c.api.GetSystemStatus(ctx)
	if err != nil {
		return Check{
			Name:    "system",
			Status:  StatusCritical,
			Message: fmt.Sprintf("failed to get system status: %v", err),
		}
	}

	message := fmt.Sprintf("Lidarr %s is running", status.Version)
	if !status.StartTime.IsZero() {
		message += fmt.Sprintf(" (up %s)", formatDuration(time.Since(status.StartTime)))
	}
	return Check{Name: "system", Status: StatusOK, Message: message}
}

func (c *Checker) checkDisks(ctx context.Context) []Check {
	disks, err := c.api.GetDiskSpace(ctx)
	if err != nil {
		return []Check{{
			Name:    "disk",
			Status:  StatusWarning,
			Message: fmt.Sprintf("failed to check disk space: %v", err),
		}}
	}

	var checks []Check
	for _, disk := range disks {
		if disk.TotalSpace <= 0 {
			continue
		}
		usedPercent := float64(disk.TotalSpace-disk.FreeSpace) / float64(disk.TotalSpace) * 100

		status := StatusOK
		switch {
		case usedPercent > c.opts.DiskThresholdPercent:
			status = StatusCritical
		case usedPercent > c.opts.DiskThresholdPercent-10:
			status = StatusWarning
		}

		checks = append(checks, Check{
			Name:   "disk " + disk.Path,
			Status: status,
			Message: fmt.Sprintf("%s free of %s (%.1f%% used)",
				FormatBytes(disk.FreeSpace), FormatBytes(disk.TotalSpace), usedPercent),
		})
	}
	return checks
}

func (c *Checker) checkQueue(ctx context.Context) Check {
	queue, err := c.api.GetQueue(ctx, 1, 100)
	if err != nil {
		return Check{
			Name:    "queue",
			Status:  StatusWarning,
			Message: fmt.Sprintf("failed to check queue: %v", err),
		}
	}

	var active, failed, stalled int
	for _, item := range queue.Records {
		switch item.Status {
		case "downloading", "queued":
			active++
		case "failed", "warning":
			failed++
		case "delay":
			stalled++
		default:
			if item.TrackedDownloadStatus == "warning" || item.TrackedDownloadStatus == "error" {
				failed++
			}
		}
	}

	status := StatusOK
	switch {
	case failed > 0:
		status = StatusWarning
	case stalled > stalledWarningCount:
		status = StatusWarning
	case queue.TotalRecords > c.opts.QueueWarningSize:
		status = StatusWarning
	}

	return Check{
		Name:   "queue",
		Status: status,
		Message: fmt.Sprintf("%d total, %d active, %d failed, %d stalled",
			queue.TotalRecords, active, failed, stalled),
	}
}

func (c *Checker) checkWanted(ctx context.Context) Check {
	wanted, err := c.api.GetWanted(ctx, 1, 1, false)
	if err != nil {
		return Check{
			Name:    "wanted",
			Status:  StatusWarning,
			Message: fmt.Sprintf("failed to check wanted albums: %v", err),
		}
	}

	return Check{
		Name:    "wanted",
		Status:  StatusOK,
		Message: fmt.Sprintf("%d missing albums", wanted.TotalRecords),
	}
}

// FormatBytes renders a byte count in human readable form.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd %dh", int(d.Hours())/24, int(d.Hours())%24)
	}
}
