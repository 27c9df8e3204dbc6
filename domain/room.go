package domain

// RoomID names a fanout scope: a text channel, a DM thread or a voice channel.
type RoomID string

// PresenceRoom is the well-known room every authenticated connection joins.
// Online/offline edges are published there.
const PresenceRoom = RoomID("presence")
