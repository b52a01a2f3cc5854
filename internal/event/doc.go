// Package event defines the JSON frames exchanged with relay clients.
//
// Inbound frames decode into a Command (SendText or ChangeNick). Outbound
// frames are Events (Message, Joined, Parted, Renamed), each carrying its
// own wire tag so that callers never assemble type/subtype fields by hand.
package event
