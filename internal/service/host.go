package service

import (
	"context"
	"errors"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// Host reads and edits the site branding.
type Host struct {
	hostStore model.HostStore
	logger    *logger.Logger
}

func NewHost(hostStore model.HostStore, logger *logger.Logger) *Host {
	return &Host{hostStore: hostStore, logger: logger}
}

func (s *Host) Get(ctx context.Context) (model.HostInfo, error) {
	info, err := s.hostStore.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.HostInfo{}, apierrors.NewErrHostNotFound()
	}
	if err != nil {
		return model.HostInfo{}, storeError("get host info", err)
	}
	return info, nil
}

// Update changes the host colors. Admin only.
func (s *Host) Update(ctx context.Context, caller model.User, params model.UpdateHostParams) error {
	if !caller.IsAdmin {
		return apierrors.NewErrAdminRequired()
	}

	if err := validateColors(map[string]*string{
		"primary":   params.PrimaryColor,
		"secondary": params.SecondaryColor,
		"tertiary":  params.TertiaryColor,
	}); err != nil {
		return err
	}

	err := s.hostStore.Update(ctx, params)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrHostNotFound()
	}
	if err != nil {
		return storeError("update host info", err)
	}

	s.logger.Info("Host service: branding updated", "admin", caller.Username)

	return nil
}
