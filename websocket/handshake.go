package websocket

import (
	"github.com/watt-toolkit/wsframer/internal/base64codec"
	"github.com/watt-toolkit/wsframer/internal/sha1block"
)

// acceptKeyLen is the fixed length of a Sec-WebSocket-Accept value: a
// padded Base64 encoding of a 20-byte SHA-1 digest.
const acceptKeyLen = 28

// ProcessSecWebSocketKey derives the Sec-WebSocket-Accept value for a
// client's Sec-WebSocket-Key, per RFC 6455 section 1.3:
//
//	accept = Base64(SHA1(key + "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"))
//
// The scratch block that is hashed is laid out exactly as the original
// crate does it: the raw key bytes immediately followed by the GUID, with
// no intervening copy or allocation beyond the one scratch buffer sized to
// the SHA-1 block schedule.
func ProcessSecWebSocketKey(key string) [acceptKeyLen]byte {
	n := len(key) + len(websocketGUID)
	buf := make([]byte, sha1block.BlocksLen(n))
	copy(buf, key)
	copy(buf[len(key):], websocketGUID)

	digest := sha1block.Sum(buf, n)

	var accept [acceptKeyLen]byte
	base64codec.StdPadded.EncodeSlice(digest[:], accept[:])
	return accept
}
