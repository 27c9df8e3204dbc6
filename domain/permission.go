package domain

// Permissions is a bitfield of grantable capabilities. Each set bit stands
// for one capability; checks are plain bitwise containment.
type Permissions uint64

const (
	PermViewChannels Permissions = 1 << iota
	PermSendMessages
	PermAddReactions
	PermEmbedLinks
	PermAttachFiles
	PermConnect
	PermSpeak
	PermManageMessages
	PermManageChannels
	PermManageRoles
	PermKickMembers
	PermBanMembers
	PermAdministrator
)

// PermsAll is every bit defined above. The server owner always resolves to it.
const PermsAll = Permissions(1<<13 - 1)

// PermsDefault is what the auto-created default role grants.
const PermsDefault = PermViewChannels | PermSendMessages | PermAddReactions |
	PermEmbedLinks | PermAttachFiles | PermConnect | PermSpeak

// Has reports whether every bit of required is set.
func (p Permissions) Has(required Permissions) bool {
	return p&required == required
}

// Legacy fixed role names kept for memberships created before custom roles
// existed. They resolve through this static table instead of a stored Role.
const (
	LegacyRoleAdmin     = "admin"
	LegacyRoleModerator = "moderator"
	LegacyRoleMember    = "member"
)

var legacyRolePermissions = map[string]Permissions{
	LegacyRoleAdmin: PermsDefault | PermManageMessages | PermManageChannels |
		PermManageRoles | PermKickMembers | PermBanMembers,
	LegacyRoleModerator: PermsDefault | PermManageMessages | PermKickMembers,
	LegacyRoleMember:    PermsDefault,
}

var legacyRolePositions = map[string]int{
	LegacyRoleAdmin:     100,
	LegacyRoleModerator: 50,
	LegacyRoleMember:    0,
}

// LegacyRolePermissions resolves a legacy fixed role name to its bitfield.
func LegacyRolePermissions(name string) (Permissions, bool) {
	p, ok := legacyRolePermissions[name]
	return p, ok
}

// LegacyRolePosition resolves a legacy fixed role name to its hierarchy rank.
func LegacyRolePosition(name string) (int, bool) {
	pos, ok := legacyRolePositions[name]
	return pos, ok
}
