// Package websocket implements an RFC 6455 WebSocket framing core for
// constrained, allocation-free environments.
//
// It does two jobs: TxFramer assembles a well-formed frame (or the HTTP/1.1
// Upgrade handshake) into a caller-provided buffer, and RxFramer
// incrementally parses inbound bytes into framed messages, tolerating
// arbitrary segmentation across successive reads. Transport (TCP/TLS),
// HTTP request routing, and application dispatch are out of scope: the
// caller supplies I/O and this package only ever touches the bytes handed
// to it.
//
// Non-goals: TLS, permessage-deflate or any other extension, automatic
// ping/pong or keepalive, automatic close-handshake sequencing, fragment
// reassembly across continuation frames, and autobahn-grade UTF-8
// validation of text payloads. A caller that needs any of those layers it
// on top of RxFramer/TxFramer.
package websocket
