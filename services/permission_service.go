package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"parley/contract"
	"parley/domain"
	"parley/errors"
)

// Hierarchy positions outside the role table.
const ownerPosition = 1 << 30

type IPermissionService interface {
	ResolvePermissions(ctx context.Context, userID, serverID string) (domain.Permissions, error)
	Require(ctx context.Context, userID, serverID string, required domain.Permissions) error
	CanManage(ctx context.Context, actorID, targetID, serverID string) (bool, error)
	CreateRole(ctx context.Context, actorID string, role domain.Role) (domain.Role, error)
	UpdateRole(ctx context.Context, actorID string, role domain.Role) error
	DeleteRole(ctx context.Context, actorID, serverID, roleID string) error
}

// PermissionService resolves permission bitfields from role and membership
// data and enforces role-hierarchy management rules. Reads go straight to
// the store (read-mostly, briefly stale is fine) and never touch fanout
// locks.
type PermissionService struct {
	store contract.RoleAdmin
	log   *slog.Logger
}

func NewPermissionService(log *slog.Logger, store contract.RoleAdmin) *PermissionService {
	return &PermissionService{store: store, log: log}
}

// ResolvePermissions returns the user's effective bitfield for a server.
// The owner implicitly holds every bit; everyone else resolves through
// their single effective role, legacy names through the static table.
func (s *PermissionService) ResolvePermissions(ctx context.Context, userID, serverID string) (domain.Permissions, error) {
	owner, err := s.store.IsOwner(ctx, serverID, userID)
	if err != nil {
		return 0, err
	}
	if owner {
		return domain.PermsAll, nil
	}

	membership, err := s.store.GetUserRole(ctx, serverID, userID)
	if err != nil {
		return 0, err
	}

	if membership.HasCustomRole() {
		return s.store.GetRolePermissions(ctx, serverID, membership.RoleID)
	}
	if perms, ok := domain.LegacyRolePermissions(membership.LegacyRole); ok {
		return perms, nil
	}

	// Membership without any resolvable role falls back to the default role.
	def, err := s.store.DefaultRole(ctx, serverID)
	if err != nil {
		return 0, err
	}
	return def.Permissions, nil
}

// Require is the gate every mutation passes. A missing bit comes back as a
// scoped ErrPermissionDenied so the caller is always told.
func (s *PermissionService) Require(ctx context.Context, userID, serverID string, required domain.Permissions) error {
	perms, err := s.ResolvePermissions(ctx, userID, serverID)
	if err != nil {
		return err
	}
	if perms.Has(domain.PermAdministrator) {
		return nil
	}
	if !perms.Has(required) {
		return fmt.Errorf("user %s on server %s: %w", userID, serverID, errors.ErrPermissionDenied)
	}
	return nil
}

// CanManage reports whether actor outranks target: strictly greater
// hierarchy position, never yourself, never the server owner.
func (s *PermissionService) CanManage(ctx context.Context, actorID, targetID, serverID string) (bool, error) {
	if actorID == targetID {
		return false, nil
	}
	targetOwner, err := s.store.IsOwner(ctx, serverID, targetID)
	if err != nil {
		return false, err
	}
	if targetOwner {
		return false, nil
	}

	actorPos, err := s.position(ctx, serverID, actorID)
	if err != nil {
		return false, err
	}
	targetPos, err := s.position(ctx, serverID, targetID)
	if err != nil {
		return false, err
	}
	return actorPos > targetPos, nil
}

func (s *PermissionService) position(ctx context.Context, serverID, userID string) (int, error) {
	owner, err := s.store.IsOwner(ctx, serverID, userID)
	if err != nil {
		return 0, err
	}
	if owner {
		return ownerPosition, nil
	}

	membership, err := s.store.GetUserRole(ctx, serverID, userID)
	if err != nil {
		return 0, err
	}
	if membership.HasCustomRole() {
		role, err := s.store.GetRole(ctx, serverID, membership.RoleID)
		if err != nil {
			return 0, err
		}
		return role.Position, nil
	}
	if pos, ok := domain.LegacyRolePosition(membership.LegacyRole); ok {
		return pos, nil
	}
	return 0, nil
}

func (s *PermissionService) CreateRole(ctx context.Context, actorID string, role domain.Role) (domain.Role, error) {
	if err := s.Require(ctx, actorID, role.ServerID, domain.PermManageRoles); err != nil {
		return domain.Role{}, err
	}
	role.ID = uuid.NewString()
	role.IsDefault = false
	if err := s.store.SaveRole(ctx, role); err != nil {
		return domain.Role{}, err
	}
	s.log.Info("Role created", "server_id", role.ServerID, "role_id", role.ID, "actor_id", actorID)
	return role, nil
}

// UpdateRole rewrites a role in place. The default role keeps its name and
// flag whatever the caller sends.
func (s *PermissionService) UpdateRole(ctx context.Context, actorID string, role domain.Role) error {
	if err := s.Require(ctx, actorID, role.ServerID, domain.PermManageRoles); err != nil {
		return err
	}
	existing, err := s.store.GetRole(ctx, role.ServerID, role.ID)
	if err != nil {
		return err
	}
	if existing.IsDefault && role.Name != existing.Name {
		return errors.ErrDefaultRole
	}
	role.IsDefault = existing.IsDefault
	return s.store.SaveRole(ctx, role)
}

// DeleteRole removes the role; holders are reassigned to the default role in
// the same store transaction.
func (s *PermissionService) DeleteRole(ctx context.Context, actorID, serverID, roleID string) error {
	if err := s.Require(ctx, actorID, serverID, domain.PermManageRoles); err != nil {
		return err
	}
	if err := s.store.DeleteRole(ctx, serverID, roleID); err != nil {
		return err
	}
	s.log.Info("Role deleted, holders reassigned to default",
		"server_id", serverID, "role_id", roleID, "actor_id", actorID)
	return nil
}

// ProvisionServer creates a server with its undeletable default role, the
// minimum state a tenant needs before anyone can connect.
func (s *PermissionService) ProvisionServer(ctx context.Context, ownerID, name string) (domain.Server, domain.Role, error) {
	server := domain.Server{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveServer(ctx, server); err != nil {
		return domain.Server{}, domain.Role{}, err
	}

	def := domain.Role{
		ID:          uuid.NewString(),
		ServerID:    server.ID,
		Name:        "everyone",
		Permissions: domain.PermsDefault,
		Position:    0,
		IsDefault:   true,
	}
	if err := s.store.SaveRole(ctx, def); err != nil {
		return domain.Server{}, domain.Role{}, err
	}

	owner := domain.Membership{
		ServerID: server.ID,
		UserID:   ownerID,
		RoleID:   def.ID,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.store.SaveMembership(ctx, owner); err != nil {
		return domain.Server{}, domain.Role{}, err
	}
	return server, def, nil
}
