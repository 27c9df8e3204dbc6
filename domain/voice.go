package domain

// VoicePhase is the per-user-per-room signaling lifecycle. Signals are only
// relayed between two Active members of the same room.
type VoicePhase int

const (
	VoiceIdle VoicePhase = iota
	// VoiceJoining never appears on a stored member: the coordinator
	// admits members as Active within a single critical section, so the
	// transient phase is unobservable.
	VoiceJoining
	VoiceActive
	VoiceLeaving
)

func (p VoicePhase) String() string {
	switch p {
	case VoiceIdle:
		return "idle"
	case VoiceJoining:
		return "joining"
	case VoiceActive:
		return "active"
	case VoiceLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// VoiceParticipant is one user's occupancy of a voice channel. Ephemeral by
// nature: it follows the connection, not the account. A persisted mirror is
// kept in the store for crash recovery and inspection only.
type VoiceParticipant struct {
	UserID       string `json:"user_id"`
	ChannelID    string `json:"channel_id"`
	ConnectionID string `json:"connection_id"`
	IsMuted      bool   `json:"is_muted"`
	IsDeafened   bool   `json:"is_deafened"`
}
