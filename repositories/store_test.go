package repositories

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parley/domain"
	"parley/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBadgerStore_Server_RoundTrip_And_Ownership(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	srv := domain.Server{ID: "srv-1", OwnerID: "boss", Name: "hq", CreatedAt: time.Now().UTC()}
	req.NoError(store.SaveServer(ctx, srv))

	got, err := store.GetServer(ctx, "srv-1")
	req.NoError(err)
	req.Equal(srv.Name, got.Name)
	req.Equal(srv.OwnerID, got.OwnerID)

	owner, err := store.IsOwner(ctx, "srv-1", "boss")
	req.NoError(err)
	req.True(owner)

	owner, err = store.IsOwner(ctx, "srv-1", "pleb")
	req.NoError(err)
	req.False(owner)

	_, err = store.GetServer(ctx, "no-such-server")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestBadgerStore_Membership_Gates(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	m := domain.Membership{ServerID: "srv-1", UserID: "u1", RoleID: "role-1", JoinedAt: time.Now().UTC()}
	req.NoError(store.SaveMembership(ctx, m))

	isMember, err := store.IsMember(ctx, "srv-1", "u1")
	req.NoError(err)
	req.True(isMember)

	isMember, err = store.IsMember(ctx, "srv-1", "stranger")
	req.NoError(err)
	req.False(isMember)

	got, err := store.GetUserRole(ctx, "srv-1", "u1")
	req.NoError(err)
	req.Equal("role-1", got.RoleID)
	req.True(got.HasCustomRole())
}

func TestBadgerStore_DefaultRole_Scan(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	req.NoError(store.SaveRole(ctx, domain.Role{ID: "mods", ServerID: "srv-1", Name: "mods", Position: 10}))
	req.NoError(store.SaveRole(ctx, domain.Role{ID: "def", ServerID: "srv-1", Name: "everyone", IsDefault: true}))
	// Another server's default role must not leak into the scan
	req.NoError(store.SaveRole(ctx, domain.Role{ID: "other", ServerID: "srv-2", Name: "everyone", IsDefault: true}))

	def, err := store.DefaultRole(ctx, "srv-1")
	req.NoError(err)
	req.Equal("def", def.ID)

	_, err = store.DefaultRole(ctx, "srv-without-roles")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestBadgerStore_DeleteRole_Reassigns_Holders_To_Default(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	req.NoError(store.SaveRole(ctx, domain.Role{ID: "def", ServerID: "srv-1", Name: "everyone", IsDefault: true}))
	req.NoError(store.SaveRole(ctx, domain.Role{ID: "vip", ServerID: "srv-1", Name: "vip", Position: 20}))
	req.NoError(store.SaveMembership(ctx, domain.Membership{ServerID: "srv-1", UserID: "u1", RoleID: "vip"}))
	req.NoError(store.SaveMembership(ctx, domain.Membership{ServerID: "srv-1", UserID: "u2", RoleID: "vip"}))
	req.NoError(store.SaveMembership(ctx, domain.Membership{ServerID: "srv-1", UserID: "u3", RoleID: "def"}))

	req.NoError(store.DeleteRole(ctx, "srv-1", "vip"))

	// The role is gone and its holders now resolve to the default role
	_, err := store.GetRole(ctx, "srv-1", "vip")
	req.ErrorIs(err, errors.ErrNotFound)

	for _, userID := range []string{"u1", "u2"} {
		m, err := store.GetUserRole(ctx, "srv-1", userID)
		req.NoError(err)
		req.Equal("def", m.RoleID)
	}

	holders, err := store.MembersWithRole(ctx, "srv-1", "def")
	req.NoError(err)
	req.Len(holders, 3)
}

func TestBadgerStore_DeleteRole_Refuses_The_Default_Role(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	req.NoError(store.SaveRole(ctx, domain.Role{ID: "def", ServerID: "srv-1", Name: "everyone", IsDefault: true}))

	err := store.DeleteRole(ctx, "srv-1", "def")
	req.ErrorIs(err, errors.ErrDefaultRole)

	_, err = store.GetRole(ctx, "srv-1", "def")
	req.NoError(err)
}

func TestBadgerStore_Role_Permissions(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	req.NoError(store.SaveRole(ctx, domain.Role{
		ID: "mods", ServerID: "srv-1", Name: "mods",
		Permissions: domain.PermsDefault | domain.PermManageMessages,
	}))

	perms, err := store.GetRolePermissions(ctx, "srv-1", "mods")
	req.NoError(err)
	req.True(perms.Has(domain.PermManageMessages))
	req.False(perms.Has(domain.PermAdministrator))
}

func TestBadgerStore_Voice_Mirror(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	p := domain.VoiceParticipant{UserID: "u1", ChannelID: "vc-1", ConnectionID: "c1"}
	req.NoError(store.JoinVoiceChannel(ctx, p))
	req.NoError(store.JoinVoiceChannel(ctx, domain.VoiceParticipant{UserID: "u2", ChannelID: "vc-1", ConnectionID: "c2"}))

	participants, err := store.GetVoiceParticipants(ctx, "vc-1")
	req.NoError(err)
	req.Len(participants, 2)

	p.IsMuted = true
	req.NoError(store.UpdateVoiceState(ctx, p))
	participants, err = store.GetVoiceParticipants(ctx, "vc-1")
	req.NoError(err)
	for _, got := range participants {
		if got.UserID == "u1" {
			req.True(got.IsMuted)
		}
	}

	req.NoError(store.LeaveVoiceChannel(ctx, "vc-1", "u1"))
	// Leaving twice is harmless
	req.NoError(store.LeaveVoiceChannel(ctx, "vc-1", "u1"))

	participants, err = store.GetVoiceParticipants(ctx, "vc-1")
	req.NoError(err)
	req.Len(participants, 1)
	req.Equal("u2", participants[0].UserID)
}

func TestBadgerStore_Channel_RoundTrip(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	ctx := context.Background()

	c := domain.Channel{ID: "general", ServerID: "srv-1", Name: "general", Kind: domain.ChannelText}
	req.NoError(store.SaveChannel(ctx, c))

	got, err := store.GetChannel(ctx, "general")
	req.NoError(err)
	req.Equal(domain.ChannelText, got.Kind)
	req.Equal("srv-1", got.ServerID)
}
