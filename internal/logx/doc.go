// Package logx builds the relay's zerolog loggers.
//
// Console output is human readable with short timestamps; JSON output keeps
// every field structured for log shippers.
package logx
