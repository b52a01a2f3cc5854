// Package identity derives everything a participant is known by: a short
// connection ID, a normalized room and nickname, and a display color that is
// a pure function of the nickname.
package identity
