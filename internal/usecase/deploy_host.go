package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"labctl/internal/domain"
)

// DeployHostInput contains the parameters for the deploy wrapper.
type DeployHostInput struct {
	ConfigPath string // Empty = embedded default config
}

// DeployHostOutput contains the deploy announcement.
type DeployHostOutput struct {
	Host    string
	Message string
}

// DeployHost loads a lab config and announces the Hyper-V deployment
// target. The actual provisioning is done by the PowerShell layer; this
// only validates and echoes the configuration it will run with.
type DeployHost struct {
	loader domain.ConfigLoader
	logger *slog.Logger
}

// NewDeployHost creates a new DeployHost use case.
func NewDeployHost(loader domain.ConfigLoader, logger *slog.Logger) *DeployHost {
	return &DeployHost{
		loader: loader,
		logger: logger,
	}
}

// Execute loads the config and produces the deploy message.
func (uc *DeployHost) Execute(_ context.Context, in DeployHostInput) (*DeployHostOutput, error) {
	cfg, err := loadConfig(uc.loader, in.ConfigPath)
	if err != nil {
		return nil, err
	}

	host := cfg.HyperVHost()
	uc.logger.Info("deploying hyper-v host", "host", host, "config", in.ConfigPath)
	return &DeployHostOutput{
		Host:    host,
		Message: fmt.Sprintf("Deploying Hyper-V host: %s", host),
	}, nil
}
