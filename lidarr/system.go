package lidarr

import (
	"context"
	"net/http"
)

// GetSystemStatus retrieves information about the Lidarr instance.
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	spec := RequestSpec{Method: http.MethodGet, Path: "system/status"}
	if err := c.do(ctx, spec, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetDiskSpace retrieves disk space information for all root folders.
func (c *Client) GetDiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	spec := RequestSpec{Method: http.MethodGet, Path: "diskspace"}
	if err := c.do(ctx, spec, &disks); err != nil {
		return nil, err
	}
	return disks, nil
}

// GetBackups lists available system backups.
func (c *Client) GetBackups(ctx context.Context) ([]Backup, error) {
	var backups []Backup
	spec := RequestSpec{Method: http.MethodGet, Path: "system/backup"}
	if err := c.do(ctx, spec, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}

// CreateBackup starts a manual backup. The backup itself runs asynchronously
// on the server.
func (c *Client) CreateBackup(ctx context.Context) (*CommandResponse, error) {
	var resp CommandResponse
	spec := RequestSpec{
		Method: http.MethodPost,
		Path:   "system/backup",
		Body:   CommandRequest{Type: "manual"},
	}
	if err := c.do(ctx, spec, &resp); err != nil {
		return nil, err
	}
	c.logger.Info().Msg("Backup creation initiated")
	return &resp, nil
}

// RestoreBackup restores the system from a backup file.
func (c *Client) RestoreBackup(ctx context.Context, backupFile string) error {
	spec := RequestSpec{
		Method: http.MethodPost,
		Path:   "system/restore",
		Body:   CommandRequest{File: backupFile},
	}
	if err := c.do(ctx, spec, nil); err != nil {
		return err
	}
	c.logger.Info().Str("file", backupFile).Msg("System restore initiated")
	return nil
}

// sendCommand posts a command to the Lidarr command queue.
func (c *Client) sendCommand(ctx context.Context, cmd CommandRequest) (*CommandResponse, error) {
	var resp CommandResponse
	spec := RequestSpec{Method: http.MethodPost, Path: "command", Body: cmd}
	if err := c.do(ctx, spec, &resp); err != nil {
		return nil, err
	}
	c.logger.Debug().Str("command", cmd.Name).Int64("id", resp.ID).Msg("Command queued")
	return &resp, nil
}
