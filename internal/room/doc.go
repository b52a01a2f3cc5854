// Package room holds the relay's shared state: which participants are in
// which room, and the fan-out that delivers one serialized event to every
// member of a room.
package room
