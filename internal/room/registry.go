package room

import "sync"

// Registry maps room names to their current members. A room is present only
// while it has at least one member. All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[*Participant]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[*Participant]struct{}),
	}
}

// Join adds p to roomName, creating the room if needed, and returns the
// room's size afterwards.
func (r *Registry) Join(roomName string, p *Participant) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomName]
	if !ok {
		members = make(map[*Participant]struct{})
		r.rooms[roomName] = members
	}
	members[p] = struct{}{}
	return len(members)
}

// Leave removes p from roomName and drops the room once it is empty. It
// returns how many members remain and whether p was a member; removing an
// absent participant is a no-op.
func (r *Registry) Leave(roomName string, p *Participant) (remaining int, removed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomName]
	if !ok {
		return 0, false
	}
	if _, ok := members[p]; !ok {
		return len(members), false
	}

	delete(members, p)
	if len(members) == 0 {
		delete(r.rooms, roomName)
	}
	return len(members), true
}

// Snapshot returns the members of roomName at this instant. The slice is
// owned by the caller and unaffected by later joins or leaves.
func (r *Registry) Snapshot(roomName string) []*Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[roomName]
	snapshot := make([]*Participant, 0, len(members))
	for p := range members {
		snapshot = append(snapshot, p)
	}
	return snapshot
}

// Len returns the number of members in roomName.
func (r *Registry) Len(roomName string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[roomName])
}

// Has reports whether roomName currently has an entry.
func (r *Registry) Has(roomName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[roomName]
	return ok
}

// Rooms returns the member count of every live room.
func (r *Registry) Rooms() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int, len(r.rooms))
	for name, members := range r.rooms {
		counts[name] = len(members)
	}
	return counts
}

// Count returns the number of participants across all rooms.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, members := range r.rooms {
		total += len(members)
	}
	return total
}
