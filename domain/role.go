package domain

import "time"

// Role is a named permission grant inside one server. Position ranks roles:
// a higher position may manage members holding a strictly lower one.
type Role struct {
	ID          string
	ServerID    string
	Name        string
	Color       string
	Permissions Permissions
	Position    int
	IsDefault   bool
}

// Server is the multi-tenant unit owning channels, roles and members.
// The owner is not a role; ownership short-circuits every permission check.
type Server struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

// ChannelKind separates text fanout from voice signaling scopes.
type ChannelKind string

const (
	ChannelText  ChannelKind = "text"
	ChannelDM    ChannelKind = "dm"
	ChannelVoice ChannelKind = "voice"
)

// Channel locates a room inside a server. The core only needs the server
// binding (membership gating) and the kind.
type Channel struct {
	ID       string
	ServerID string
	Name     string
	Kind     ChannelKind
}

// Membership binds a user to a server with exactly one effective role.
// Either RoleID points at a stored Role, or LegacyRole names a fixed one.
type Membership struct {
	ServerID   string
	UserID     string
	RoleID     string
	LegacyRole string
	JoinedAt   time.Time
}

// HasCustomRole reports whether the membership resolves through a stored Role
// rather than the legacy fixed-name table.
func (m Membership) HasCustomRole() bool {
	return m.RoleID != ""
}
