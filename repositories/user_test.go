package repositories

import (
	"context"
	"testing"

	"parley/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestUserRepository(t *testing.T) *UserRepository {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db)
}

func TestUserRepository_Create_And_Lookup(t *testing.T) {
	req := require.New(t)
	repo := newTestUserRepository(t)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, "alice@example.com", "alice", "hashed-secret")
	req.NoError(err)
	req.NotEmpty(id)

	byID, err := repo.GetUserByID(ctx, id)
	req.NoError(err)
	req.Equal("alice", byID.Username)
	req.Equal("hashed-secret", byID.PasswordHash)
	req.False(byID.CreatedAt.IsZero())

	byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
	req.NoError(err)
	req.Equal(id, byEmail.ID)
}

func TestUserRepository_Rejects_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	repo := newTestUserRepository(t)
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, "alice@example.com", "alice", "hash-1")
	req.NoError(err)

	_, err = repo.CreateUser(ctx, "alice@example.com", "imposter", "hash-2")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	// The original record is untouched
	got, err := repo.GetUserByEmail(ctx, "alice@example.com")
	req.NoError(err)
	req.Equal(first, got.ID)
	req.Equal("alice", got.Username)
}

func TestUserRepository_Missing_Users_Are_NotFound(t *testing.T) {
	req := require.New(t)
	repo := newTestUserRepository(t)
	ctx := context.Background()

	_, err := repo.GetUserByEmail(ctx, "ghost@example.com")
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = repo.GetUserByID(ctx, "no-such-id")
	req.ErrorIs(err, errors.ErrNotFound)
}
