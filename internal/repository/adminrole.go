package repository

import "context"

// AdminRoles defines the interface for the admin role registry
type AdminRoles interface {
	// ListRoles returns all registered admin role IDs.
	ListRoles(ctx context.Context) ([]string, error)

	// HasRole reports whether roleID is registered.
	HasRole(ctx context.Context, roleID string) (bool, error)

	// AddRole registers a role. Duplicates map to domain.ErrRoleExists.
	AddRole(ctx context.Context, roleID string) error

	// RemoveRole unregisters a role. Missing rows map to domain.ErrRoleNotFound.
	RemoveRole(ctx context.Context, roleID string) error
}
