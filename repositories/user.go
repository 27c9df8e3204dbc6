package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"parley/domain"
	"parley/errors"
)

// Key layout:
//
//	user:{id}           -> User
//	user:email:{email}  -> id (secondary index for login)
const (
	userPrefix      = "user:"
	userEmailPrefix = "user:email:"
)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a new user, guarding email uniqueness inside the
// transaction.
func (r *UserRepository) CreateUser(_ context.Context, email, username, passwordHash string) (string, error) {
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(userEmailPrefix + email))
		if err == nil {
			return errors.ErrUserAlreadyExists
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		bytes, err := json.Marshal(user)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(userPrefix+user.ID), bytes); err != nil {
			return err
		}
		return txn.Set([]byte(userEmailPrefix+email), []byte(user.ID))
	})
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var id string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailPrefix + email))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			id = string(v)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, fmt.Errorf("user %s: %w", email, errors.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, err
	}
	return r.GetUserByID(ctx, id)
}

func (r *UserRepository) GetUserByID(_ context.Context, id string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error { return json.Unmarshal(v, &user) })
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, fmt.Errorf("user %s: %w", id, errors.ErrNotFound)
	}
	return user, err
}
