// Package common provides helpers shared by command implementations.
package common

import (
	"fmt"

	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
)

// InitWorkspace creates the run workspace and points the file logger at it.
func InitWorkspace(c *cfg.Config, workspaceDir string, subdirs []string, timestamped bool) error {
	if err := c.CreateWorkspace(workspaceDir, subdirs, timestamped); err != nil {
		return fmt.Errorf("failed to initialize workspace: %v", err)
	}
	log.SetOutput(c.RunLoc)
	return nil
}
