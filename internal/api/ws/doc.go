// Package ws serves the /stream WebSocket used by the voice search page.
//
// The client sends transcribed speech as {"type":"query","message":...}
// and receives either a "solution" or a "no_result" message carrying the
// sentence to speak. "evaluate" and "ping" are also understood. Messages are
// JSON encoded with sonic.
package ws
