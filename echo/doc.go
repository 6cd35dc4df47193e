// Package echo is a minimal line-oriented TCP responder.
//
// For every successful read on a connection the server logs the byte count and
// content and answers with a fixed reply (DefaultReply, "+OK\r\n", the RESP
// simple-string OK, so redis-cli can talk to it). A connection ends when the
// peer closes it. Serve stops accepting and closes live connections when its
// context is done.
package echo
