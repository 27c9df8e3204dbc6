//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"parley/domain"
	"parley/errors"
)

// Key layout. Prefix scans give us "everything of one server/channel":
//
//	server:{serverID}                 -> Server
//	channel:{channelID}               -> Channel
//	role:{serverID}:{roleID}          -> Role
//	member:{serverID}:{userID}        -> Membership
//	voice:{channelID}:{userID}        -> VoiceParticipant
const (
	serverPrefix  = "server:"
	channelPrefix = "channel:"
	rolePrefix    = "role:"
	memberPrefix  = "member:"
	voicePrefix   = "voice:"
)

// BadgerStore implements contract.RoleAdmin on BadgerDB. It is the
// persistent collaborator the realtime core consults; every method takes a
// context so a disconnected caller's lookup can be abandoned.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (s *BadgerStore) SaveServer(_ context.Context, srv domain.Server) error {
	return s.put(serverPrefix+srv.ID, srv)
}

func (s *BadgerStore) GetServer(_ context.Context, serverID string) (domain.Server, error) {
	var srv domain.Server
	err := s.get(serverPrefix+serverID, &srv)
	return srv, err
}

func (s *BadgerStore) SaveChannel(_ context.Context, c domain.Channel) error {
	return s.put(channelPrefix+c.ID, c)
}

func (s *BadgerStore) GetChannel(_ context.Context, channelID string) (domain.Channel, error) {
	var c domain.Channel
	err := s.get(channelPrefix+channelID, &c)
	return c, err
}

func (s *BadgerStore) IsOwner(ctx context.Context, serverID, userID string) (bool, error) {
	srv, err := s.GetServer(ctx, serverID)
	if err != nil {
		return false, err
	}
	return srv.OwnerID == userID, nil
}

func (s *BadgerStore) IsMember(_ context.Context, serverID, userID string) (bool, error) {
	err := s.get(memberKey(serverID, userID), &domain.Membership{})
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, errors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *BadgerStore) GetUserRole(_ context.Context, serverID, userID string) (domain.Membership, error) {
	var m domain.Membership
	err := s.get(memberKey(serverID, userID), &m)
	return m, err
}

func (s *BadgerStore) SaveMembership(_ context.Context, m domain.Membership) error {
	return s.put(memberKey(m.ServerID, m.UserID), m)
}

func (s *BadgerStore) SaveRole(_ context.Context, r domain.Role) error {
	return s.put(roleKey(r.ServerID, r.ID), r)
}

func (s *BadgerStore) GetRole(_ context.Context, serverID, roleID string) (domain.Role, error) {
	var r domain.Role
	err := s.get(roleKey(serverID, roleID), &r)
	return r, err
}

func (s *BadgerStore) GetRolePermissions(ctx context.Context, serverID, roleID string) (domain.Permissions, error) {
	r, err := s.GetRole(ctx, serverID, roleID)
	if err != nil {
		return 0, err
	}
	return r.Permissions, nil
}

// DefaultRole scans the server's roles for the single IsDefault one.
func (s *BadgerStore) DefaultRole(_ context.Context, serverID string) (domain.Role, error) {
	var found domain.Role
	ok := false
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(rolePrefix + serverID + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r domain.Role
			if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, &r) }); err != nil {
				return err
			}
			if r.IsDefault {
				found = r
				ok = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return domain.Role{}, err
	}
	if !ok {
		return domain.Role{}, fmt.Errorf("default role of server %s: %w", serverID, errors.ErrNotFound)
	}
	return found, nil
}

// MembersWithRole returns the memberships currently resolving to roleID.
func (s *BadgerStore) MembersWithRole(_ context.Context, serverID, roleID string) ([]domain.Membership, error) {
	var members []domain.Membership
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(memberPrefix + serverID + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m domain.Membership
			if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, &m) }); err != nil {
				return err
			}
			if m.RoleID == roleID {
				members = append(members, m)
			}
		}
		return nil
	})
	return members, err
}

// DeleteRole removes a role and reassigns every holder to the server's
// default role in the same transaction, so no membership ever dangles.
// The default role itself is not deletable.
func (s *BadgerStore) DeleteRole(ctx context.Context, serverID, roleID string) error {
	role, err := s.GetRole(ctx, serverID, roleID)
	if err != nil {
		return err
	}
	if role.IsDefault {
		return errors.ErrDefaultRole
	}
	def, err := s.DefaultRole(ctx, serverID)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		type reassignment struct {
			key []byte
			m   domain.Membership
		}
		var pending []reassignment

		scan := func() error {
			prefix := []byte(memberPrefix + serverID + ":")
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				var m domain.Membership
				if err := item.Value(func(v []byte) error { return json.Unmarshal(v, &m) }); err != nil {
					return err
				}
				if m.RoleID == roleID {
					m.RoleID = def.ID
					pending = append(pending, reassignment{key: item.KeyCopy(nil), m: m})
				}
			}
			return nil
		}
		if err := scan(); err != nil {
			return err
		}

		for _, p := range pending {
			bytes, err := json.Marshal(p.m)
			if err != nil {
				return err
			}
			if err := txn.Set(p.key, bytes); err != nil {
				return err
			}
		}
		return txn.Delete([]byte(roleKey(serverID, roleID)))
	})
}

func (s *BadgerStore) GetVoiceParticipants(_ context.Context, channelID string) ([]domain.VoiceParticipant, error) {
	var participants []domain.VoiceParticipant
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(voicePrefix + channelID + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var p domain.VoiceParticipant
			if err := it.Item().Value(func(v []byte) error { return json.Unmarshal(v, &p) }); err != nil {
				return err
			}
			participants = append(participants, p)
		}
		return nil
	})
	return participants, err
}

func (s *BadgerStore) JoinVoiceChannel(_ context.Context, p domain.VoiceParticipant) error {
	return s.put(voiceKey(p.ChannelID, p.UserID), p)
}

func (s *BadgerStore) LeaveVoiceChannel(_ context.Context, channelID, userID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(voiceKey(channelID, userID)))
	})
}

func (s *BadgerStore) UpdateVoiceState(_ context.Context, p domain.VoiceParticipant) error {
	return s.put(voiceKey(p.ChannelID, p.UserID), p)
}

func memberKey(serverID, userID string) string { return memberPrefix + serverID + ":" + userID }
func roleKey(serverID, roleID string) string   { return rolePrefix + serverID + ":" + roleID }
func voiceKey(channelID, userID string) string { return voicePrefix + channelID + ":" + userID }

func (s *BadgerStore) put(key string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func (s *BadgerStore) get(key string, out any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error { return json.Unmarshal(v, out) })
	})
	if isNotFound(err) {
		return fmt.Errorf("%s: %w", key, errors.ErrNotFound)
	}
	return err
}

func isNotFound(err error) bool {
	return stderrors.Is(err, badger.ErrKeyNotFound)
}
