package services

import (
	"context"
	"log/slog"
	"testing"

	"parley/domain"
	"parley/errors"
	"parley/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPermissionFixture(t *testing.T) (*PermissionService, *mocks.MockRoleAdmin) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRoleAdmin(ctrl)
	return NewPermissionService(logs.GetLoggerFromLevel(slog.LevelDebug), store), store
}

func TestResolvePermissions_Owner_Holds_Every_Bit(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "owner").Return(true, nil)

	perms, err := svc.ResolvePermissions(context.Background(), "owner", "srv")
	req.NoError(err)
	req.Equal(domain.PermsAll, perms)
	req.True(perms.Has(domain.PermAdministrator))
}

func TestResolvePermissions_Custom_Role_Wins_Over_Legacy(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "u1").Return(false, nil)
	store.EXPECT().GetUserRole(gomock.Any(), "srv", "u1").
		Return(domain.Membership{ServerID: "srv", UserID: "u1", RoleID: "mods", LegacyRole: "admin"}, nil)
	store.EXPECT().GetRolePermissions(gomock.Any(), "srv", "mods").
		Return(domain.PermsDefault|domain.PermManageMessages, nil)

	perms, err := svc.ResolvePermissions(context.Background(), "u1", "srv")
	req.NoError(err)
	req.True(perms.Has(domain.PermManageMessages))
	req.False(perms.Has(domain.PermManageRoles))
}

func TestResolvePermissions_Legacy_Admin_Is_A_Superset_Of_Moderator(t *testing.T) {
	req := require.New(t)

	adminPerms, ok := domain.LegacyRolePermissions(domain.LegacyRoleAdmin)
	req.True(ok)
	modPerms, ok := domain.LegacyRolePermissions(domain.LegacyRoleModerator)
	req.True(ok)
	memberPerms, ok := domain.LegacyRolePermissions(domain.LegacyRoleMember)
	req.True(ok)

	req.True(adminPerms.Has(modPerms))
	req.True(modPerms.Has(memberPerms))
	req.False(memberPerms.Has(modPerms))
}

func TestResolvePermissions_Falls_Back_To_Default_Role(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "u1").Return(false, nil)
	store.EXPECT().GetUserRole(gomock.Any(), "srv", "u1").
		Return(domain.Membership{ServerID: "srv", UserID: "u1"}, nil)
	store.EXPECT().DefaultRole(gomock.Any(), "srv").
		Return(domain.Role{ID: "def", Permissions: domain.PermsDefault, IsDefault: true}, nil)

	perms, err := svc.ResolvePermissions(context.Background(), "u1", "srv")
	req.NoError(err)
	req.Equal(domain.PermsDefault, perms)
}

func TestRequire_Administrator_Bypasses_Specific_Bits(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "u1").Return(false, nil)
	store.EXPECT().GetUserRole(gomock.Any(), "srv", "u1").
		Return(domain.Membership{RoleID: "admins"}, nil)
	store.EXPECT().GetRolePermissions(gomock.Any(), "srv", "admins").
		Return(domain.PermAdministrator, nil)

	// The admin bit alone satisfies any requirement
	err := svc.Require(context.Background(), "u1", "srv", domain.PermManageRoles|domain.PermBanMembers)
	req.NoError(err)
}

func TestRequire_Missing_Bit_Is_Scoped_PermissionDenied(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "u1").Return(false, nil)
	store.EXPECT().GetUserRole(gomock.Any(), "srv", "u1").
		Return(domain.Membership{LegacyRole: domain.LegacyRoleMember}, nil)

	err := svc.Require(context.Background(), "u1", "srv", domain.PermManageRoles)
	req.ErrorIs(err, errors.ErrPermissionDenied)
	req.Contains(err.Error(), "u1")
	req.Contains(err.Error(), "srv")
}

func TestCanManage_Never_Yourself_Never_The_Owner(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	ok, err := svc.CanManage(context.Background(), "u1", "u1", "srv")
	req.NoError(err)
	req.False(ok)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "boss").Return(true, nil)
	ok, err = svc.CanManage(context.Background(), "u1", "boss", "srv")
	req.NoError(err)
	req.False(ok)
}

func TestCanManage_Requires_Strictly_Higher_Position(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	memberAt := func(userID string, position int) {
		store.EXPECT().IsOwner(gomock.Any(), "srv", userID).Return(false, nil).AnyTimes()
		store.EXPECT().GetUserRole(gomock.Any(), "srv", userID).
			Return(domain.Membership{RoleID: "role-" + userID}, nil).AnyTimes()
		store.EXPECT().GetRole(gomock.Any(), "srv", "role-"+userID).
			Return(domain.Role{ID: "role-" + userID, Position: position}, nil).AnyTimes()
	}
	memberAt("high", 50)
	memberAt("peer", 50)
	memberAt("low", 10)

	ok, err := svc.CanManage(context.Background(), "high", "low", "srv")
	req.NoError(err)
	req.True(ok)

	// Equal position does not outrank
	ok, err = svc.CanManage(context.Background(), "high", "peer", "srv")
	req.NoError(err)
	req.False(ok)

	ok, err = svc.CanManage(context.Background(), "low", "high", "srv")
	req.NoError(err)
	req.False(ok)
}

func TestCanManage_Owner_Outranks_Everyone(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "target").Return(false, nil)
	store.EXPECT().IsOwner(gomock.Any(), "srv", "boss").Return(true, nil)
	store.EXPECT().GetUserRole(gomock.Any(), "srv", "target").
		Return(domain.Membership{LegacyRole: domain.LegacyRoleAdmin}, nil)

	ok, err := svc.CanManage(context.Background(), "boss", "target", "srv")
	req.NoError(err)
	req.True(ok)
}

func TestUpdateRole_Default_Role_Cannot_Be_Renamed(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "boss").Return(true, nil)
	store.EXPECT().GetRole(gomock.Any(), "srv", "def").
		Return(domain.Role{ID: "def", ServerID: "srv", Name: "everyone", IsDefault: true}, nil)

	err := svc.UpdateRole(context.Background(), "boss", domain.Role{
		ID: "def", ServerID: "srv", Name: "renamed",
	})
	req.ErrorIs(err, errors.ErrDefaultRole)
}

func TestUpdateRole_Preserves_The_Default_Flag(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "boss").Return(true, nil)
	store.EXPECT().GetRole(gomock.Any(), "srv", "def").
		Return(domain.Role{ID: "def", ServerID: "srv", Name: "everyone", IsDefault: true}, nil)
	store.EXPECT().SaveRole(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.Role) error {
			require.True(t, r.IsDefault)
			return nil
		})

	// Tightening permissions without renaming is allowed
	err := svc.UpdateRole(context.Background(), "boss", domain.Role{
		ID: "def", ServerID: "srv", Name: "everyone",
		Permissions: domain.PermViewChannels,
	})
	req.NoError(err)
}

func TestCreateRole_Requires_ManageRoles(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "pleb").Return(false, nil)
	store.EXPECT().GetUserRole(gomock.Any(), "srv", "pleb").
		Return(domain.Membership{LegacyRole: domain.LegacyRoleMember}, nil)

	_, err := svc.CreateRole(context.Background(), "pleb", domain.Role{ServerID: "srv", Name: "vip"})
	req.ErrorIs(err, errors.ErrPermissionDenied)
}

func TestCreateRole_Assigns_Id_And_Clears_Default_Flag(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "boss").Return(true, nil)
	store.EXPECT().SaveRole(gomock.Any(), gomock.Any()).Return(nil)

	created, err := svc.CreateRole(context.Background(), "boss", domain.Role{
		ServerID: "srv", Name: "vip", IsDefault: true,
	})
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.False(created.IsDefault)
}

func TestDeleteRole_Delegates_Reassignment_To_The_Store(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().IsOwner(gomock.Any(), "srv", "boss").Return(true, nil)
	store.EXPECT().DeleteRole(gomock.Any(), "srv", "vip").Return(nil)

	req.NoError(svc.DeleteRole(context.Background(), "boss", "srv", "vip"))
}

func TestProvisionServer_Creates_The_Undeletable_Default_Role(t *testing.T) {
	req := require.New(t)
	svc, store := newPermissionFixture(t)

	store.EXPECT().SaveServer(gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().SaveRole(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.Role) error {
			require.True(t, r.IsDefault)
			require.Equal(t, "everyone", r.Name)
			require.Equal(t, domain.PermsDefault, r.Permissions)
			return nil
		})
	store.EXPECT().SaveMembership(gomock.Any(), gomock.Any()).Return(nil)

	server, def, err := svc.ProvisionServer(context.Background(), "boss", "my server")
	req.NoError(err)
	req.Equal("boss", server.OwnerID)
	req.True(def.IsDefault)
}
