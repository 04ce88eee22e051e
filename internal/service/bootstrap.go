package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// Provisioner creates accounts outside the invite flow.
type Provisioner interface {
	Provision(ctx context.Context, params model.ProvisionParams, isAdmin bool) (model.User, error)
}

type BootstrapParams struct {
	Host  model.HostInfo
	Admin model.ProvisionParams
}

// Bootstrap creates the host info row and the admin account if they are
// missing. It runs once, before requests are served, and is safe to repeat.
type Bootstrap struct {
	hostStore   model.HostStore
	userStore   model.UserStore
	provisioner Provisioner
	logger      *logger.Logger
}

func NewBootstrap(
	hostStore model.HostStore,
	userStore model.UserStore,
	provisioner Provisioner,
	logger *logger.Logger,
) *Bootstrap {
	return &Bootstrap{
		hostStore:   hostStore,
		userStore:   userStore,
		provisioner: provisioner,
		logger:      logger,
	}
}

func (b *Bootstrap) Run(ctx context.Context, params BootstrapParams) error {
	if err := b.ensureHost(ctx, params.Host); err != nil {
		return err
	}
	return b.ensureAdmin(ctx, params.Admin)
}

func (b *Bootstrap) ensureHost(ctx context.Context, info model.HostInfo) error {
	_, err := b.hostStore.Get(ctx)
	if err == nil {
		b.logger.Debug("Bootstrap: host info present")
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get host info: %w", err)
	}

	if err := validateColors(map[string]*string{
		"primary":   &info.PrimaryColor,
		"secondary": &info.SecondaryColor,
		"tertiary":  &info.TertiaryColor,
	}); err != nil {
		return err
	}

	if _, err := b.hostStore.Create(ctx, info); err != nil {
		return fmt.Errorf("failed to create host info: %w", err)
	}

	b.logger.Info("Bootstrap: host info created", "hostname", info.Hostname)
	return nil
}

func (b *Bootstrap) ensureAdmin(ctx context.Context, params model.ProvisionParams) error {
	_, err := b.userStore.GetByUsername(ctx, params.Username)
	if err == nil {
		b.logger.Debug("Bootstrap: admin present", "username", params.Username)
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get admin: %w", err)
	}

	if _, err := b.provisioner.Provision(ctx, params, true); err != nil {
		return fmt.Errorf("failed to provision admin: %w", err)
	}

	b.logger.Info("Bootstrap: admin created", "username", params.Username)
	return nil
}
