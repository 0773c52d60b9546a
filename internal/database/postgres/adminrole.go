package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// AdminRoleRepository implements the admin role registry for PostgreSQL
type AdminRoleRepository struct {
	db *pgxpool.Pool
}

// NewAdminRoleRepository creates a new AdminRoleRepository
func NewAdminRoleRepository(db *pgxpool.Pool) *AdminRoleRepository {
	return &AdminRoleRepository{db: db}
}

// ListRoles returns all registered admin role IDs
func (r *AdminRoleRepository) ListRoles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, SQLListAdminRoles)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRolesFailed, err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var roleID string
		if err := rows.Scan(&roleID); err != nil {
			return nil, fmt.Errorf(ErrMsgListRolesFailed, err)
		}
		roles = append(roles, roleID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListRolesFailed, err)
	}
	return roles, nil
}

// HasRole reports whether roleID is registered
func (r *AdminRoleRepository) HasRole(ctx context.Context, roleID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SQLHasAdminRole, roleID).Scan(&exists); err != nil {
		return false, fmt.Errorf(ErrMsgListRolesFailed, err)
	}
	return exists, nil
}

// AddRole registers a role
func (r *AdminRoleRepository) AddRole(ctx context.Context, roleID string) error {
	tag, err := r.db.Exec(ctx, SQLInsertAdminRole, roleID)
	if err != nil {
		return fmt.Errorf(ErrMsgAddRoleFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRoleExists, roleID)
	}
	return nil
}

// RemoveRole unregisters a role
func (r *AdminRoleRepository) RemoveRole(ctx context.Context, roleID string) error {
	tag, err := r.db.Exec(ctx, SQLDeleteAdminRole, roleID)
	if err != nil {
		return fmt.Errorf(ErrMsgRemoveRoleFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRoleNotFound, roleID)
	}
	return nil
}
