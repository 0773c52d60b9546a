package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/metrics"
	"github.com/osse101/GuildCoin_Go/internal/repository"
)

// Actor identifies a guild member attempting an admin action.
type Actor struct {
	UserID string
	// RoleIDs are the member's current guild roles.
	RoleIDs []string
	// HasAdminPermission is true when the member holds the guild's
	// Administrator permission, which bypasses the registry.
	HasAdminPermission bool
}

// Service defines the interface for admin authorization and the role registry
type Service interface {
	// Authorize returns nil when the actor may run admin commands, and
	// domain.ErrUnauthorized otherwise.
	Authorize(ctx context.Context, actor Actor) error

	// AuthorizeAdministrator returns nil only when the actor holds the
	// Administrator permission itself. Registered admin roles do not
	// qualify; the registry cannot grow itself.
	AuthorizeAdministrator(ctx context.Context, actor Actor) error

	// ListRoles returns the registered admin role IDs.
	ListRoles(ctx context.Context) ([]domain.AdminRole, error)

	// AddRole registers a role. Duplicates map to domain.ErrRoleExists.
	AddRole(ctx context.Context, roleID string) error

	// RemoveRole unregisters a role. Missing roles map to domain.ErrRoleNotFound.
	RemoveRole(ctx context.Context, roleID string) error
}

type service struct {
	repo repository.AdminRoles
}

// NewService creates a new admin service
func NewService(repo repository.AdminRoles) Service {
	return &service{repo: repo}
}

func (s *service) Authorize(ctx context.Context, actor Actor) error {
	if actor.HasAdminPermission {
		return nil
	}

	for _, roleID := range actor.RoleIDs {
		ok, err := s.repo.HasRole(ctx, roleID)
		if err != nil {
			return fmt.Errorf(ErrMsgCheckFailed, err)
		}
		if ok {
			return nil
		}
	}

	metrics.AdminActionsDenied.Inc()
	logger.FromContext(ctx).Warn(LogMsgActionDenied, "user_id", actor.UserID)
	return domain.ErrUnauthorized
}

func (s *service) AuthorizeAdministrator(ctx context.Context, actor Actor) error {
	if actor.HasAdminPermission {
		return nil
	}

	metrics.AdminActionsDenied.Inc()
	logger.FromContext(ctx).Warn(LogMsgRegistryDenied, "user_id", actor.UserID)
	return domain.ErrUnauthorized
}

func (s *service) ListRoles(ctx context.Context) ([]domain.AdminRole, error) {
	roleIDs, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}

	roles := make([]domain.AdminRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		roles = append(roles, domain.AdminRole{RoleID: roleID})
	}
	return roles, nil
}

func (s *service) AddRole(ctx context.Context, roleID string) error {
	if roleID == "" {
		return domain.ErrInvalidInput
	}

	if err := s.repo.AddRole(ctx, roleID); err != nil {
		if errors.Is(err, domain.ErrRoleExists) {
			return err
		}
		return fmt.Errorf(ErrMsgAddFailed, roleID, err)
	}

	logger.FromContext(ctx).Info(LogMsgRoleAdded, "role_id", roleID)
	return nil
}

func (s *service) RemoveRole(ctx context.Context, roleID string) error {
	if roleID == "" {
		return domain.ErrInvalidInput
	}

	if err := s.repo.RemoveRole(ctx, roleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}
		return fmt.Errorf(ErrMsgRemoveFailed, roleID, err)
	}

	logger.FromContext(ctx).Info(LogMsgRoleRemoved, "role_id", roleID)
	return nil
}
