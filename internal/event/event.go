package event

import (
	"encoding/json"
	"time"
)

// Wire tags.
const (
	TypeMsg    = "msg"
	TypeNick   = "nick"
	TypeSystem = "system"

	SubtypeJoin = "join"
	SubtypePart = "part"
	SubtypeNick = "nick"
)

// Event is a server-to-client frame. The set of implementations is closed.
type Event interface {
	json.Marshaler
	event()
}

// Message relays a chat line to the room.
type Message struct {
	ID    string `json:"id"`
	Nick  string `json:"nick"`
	Color string `json:"color"`
	Text  string `json:"text"`
	Time  int64  `json:"time"`
}

// Joined announces a new participant.
type Joined struct {
	ID    string `json:"id"`
	Nick  string `json:"nick"`
	Color string `json:"color"`
	Time  int64  `json:"time"`
}

// Parted announces a participant that disconnected.
type Parted struct {
	ID   string `json:"id"`
	Nick string `json:"nick"`
	Time int64  `json:"time"`
}

// Renamed announces a nickname change.
type Renamed struct {
	ID    string `json:"id"`
	Old   string `json:"old"`
	Nick  string `json:"nick"`
	Color string `json:"color"`
	Time  int64  `json:"time"`
}

func (Message) event() {}
func (Joined) event()  {}
func (Parted) event()  {}
func (Renamed) event() {}

type header struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m Message) MarshalJSON() ([]byte, error) {
	type fields Message
	return json.Marshal(struct {
		header
		fields
	}{header{Type: TypeMsg}, fields(m)})
}

// MarshalJSON implements json.Marshaler.
func (j Joined) MarshalJSON() ([]byte, error) {
	type fields Joined
	return json.Marshal(struct {
		header
		fields
	}{header{Type: TypeSystem, Subtype: SubtypeJoin}, fields(j)})
}

// MarshalJSON implements json.Marshaler.
func (p Parted) MarshalJSON() ([]byte, error) {
	type fields Parted
	return json.Marshal(struct {
		header
		fields
	}{header{Type: TypeSystem, Subtype: SubtypePart}, fields(p)})
}

// MarshalJSON implements json.Marshaler.
func (r Renamed) MarshalJSON() ([]byte, error) {
	type fields Renamed
	return json.Marshal(struct {
		header
		fields
	}{header{Type: TypeSystem, Subtype: SubtypeNick}, fields(r)})
}

// Millis converts t to the epoch milliseconds used in the time field.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
