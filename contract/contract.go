//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"parley/domain"
	"parley/domain/event"
)

// EventSink is one connection's ordered outbound queue. Consume must not
// block the caller: implementations buffer and report ErrSinkFull instead.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Worker doesn't protect itself. Supervision (panic recovery, restart)
// belongs to the Supervisor.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding a manual naming method on the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Store is the persistent backend the core consults. It is an external
// collaborator: reads are read-mostly and may be briefly stale, and nothing
// on the broadcast path may block on it while holding fanout locks.
type Store interface {
	// Servers, channels and membership.
	GetServer(ctx context.Context, serverID string) (domain.Server, error)
	GetChannel(ctx context.Context, channelID string) (domain.Channel, error)
	IsOwner(ctx context.Context, serverID, userID string) (bool, error)
	IsMember(ctx context.Context, serverID, userID string) (bool, error)
	GetUserRole(ctx context.Context, serverID, userID string) (domain.Membership, error)

	// Roles.
	GetRole(ctx context.Context, serverID, roleID string) (domain.Role, error)
	GetRolePermissions(ctx context.Context, serverID, roleID string) (domain.Permissions, error)
	DefaultRole(ctx context.Context, serverID string) (domain.Role, error)

	// Voice occupancy mirror, persisted for crash recovery and inspection.
	GetVoiceParticipants(ctx context.Context, channelID string) ([]domain.VoiceParticipant, error)
	JoinVoiceChannel(ctx context.Context, p domain.VoiceParticipant) error
	LeaveVoiceChannel(ctx context.Context, channelID, userID string) error
	UpdateVoiceState(ctx context.Context, p domain.VoiceParticipant) error
}

// RoleAdmin extends Store with the mutations role administration needs.
type RoleAdmin interface {
	Store
	SaveServer(ctx context.Context, s domain.Server) error
	SaveChannel(ctx context.Context, c domain.Channel) error
	SaveRole(ctx context.Context, r domain.Role) error
	DeleteRole(ctx context.Context, serverID, roleID string) error
	SaveMembership(ctx context.Context, m domain.Membership) error
	MembersWithRole(ctx context.Context, serverID, roleID string) ([]domain.Membership, error)
}

// UserStore backs credential auth for token minting.
type UserStore interface {
	CreateUser(ctx context.Context, email, username, passwordHash string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}
