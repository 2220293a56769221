package websocket

import (
	"crypto/rand"
	"strconv"

	"github.com/watt-toolkit/wsframer/internal/base64codec"
)

// RandSource supplies randomness to TxFramer: 16 bytes for the handshake
// key nonce, 4 bytes for each frame's masking key. Production code wraps
// crypto/rand; tests inject a fixed source to reproduce the canonical
// masking-key scenarios.
type RandSource interface {
	Fill(buf []byte)
}

// cryptoRandSource is the default RandSource, backed by crypto/rand.
type cryptoRandSource struct{}

func (cryptoRandSource) Fill(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic("websocket: crypto/rand failed: " + err.Error())
	}
}

// TxFramer lays down an HTTP/1.1 Upgrade request or response, or a
// WebSocket frame, directly into a caller-owned buffer: one mutable cursor,
// no heap allocation on the hot path. mask must be true for a client-role
// framer (RFC 6455 section 5.3 requires client→server frames be masked) and
// false for a server-role framer.
type TxFramer struct {
	buf  []byte
	mask bool
	rand RandSource
}

// NewTxFramer constructs a TxFramer writing into buf. If rnd is nil, a
// crypto/rand-backed source is used.
func NewTxFramer(mask bool, buf []byte, rnd RandSource) *TxFramer {
	if rnd == nil {
		rnd = cryptoRandSource{}
	}
	return &TxFramer{buf: buf, mask: mask, rand: rnd}
}

// Upgrade writes an HTTP/1.1 Upgrade request: the default headers, a fresh
// Sec-WebSocket-Key, then any caller-supplied extra header lines (each
// including its own trailing "\r\n"), terminated by a blank line. Returns
// the written prefix of the framer's buffer.
func (t *TxFramer) Upgrade(host, path string, extraHeaders []string) ([]byte, error) {
	n := 0
	n, err := t.put(n, "GET ")
	if err != nil {
		return nil, err
	}
	if n, err = t.put(n, path); err != nil {
		return nil, err
	}
	if n, err = t.put(n, " HTTP/1.1\r\n"); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "Connection: Upgrade\r\n"); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "Upgrade: websocket\r\n"); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "Sec-WebSocket-Version: 13\r\n"); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "Host: "); err != nil {
		return nil, err
	}
	if n, err = t.put(n, host); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "\r\n"); err != nil {
		return nil, err
	}

	var nonce [16]byte
	t.rand.Fill(nonce[:])
	var key [24]byte
	base64codec.StdPadded.EncodeSlice(nonce[:], key[:])

	if n, err = t.put(n, "Sec-WebSocket-Key: "); err != nil {
		return nil, err
	}
	if n, err = t.put(n, bytesToString(key[:])); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "\r\n"); err != nil {
		return nil, err
	}

	for _, h := range extraHeaders {
		if n, err = t.put(n, h); err != nil {
			return nil, err
		}
	}

	if n, err = t.put(n, "\r\n"); err != nil {
		return nil, err
	}

	return t.buf[:n], nil
}

// Response writes an HTTP/1.1 status line, caller headers (each including
// its own trailing "\r\n"), and a blank line.
func (t *TxFramer) Response(statusCode int, statusText string, headers []string) ([]byte, error) {
	n := 0
	n, err := t.put(n, "HTTP/1.1 ")
	if err != nil {
		return nil, err
	}
	if n, err = t.put(n, strconv.Itoa(statusCode)); err != nil {
		return nil, err
	}
	if n, err = t.put(n, " "); err != nil {
		return nil, err
	}
	if n, err = t.put(n, statusText); err != nil {
		return nil, err
	}
	if n, err = t.put(n, "\r\n"); err != nil {
		return nil, err
	}

	for _, h := range headers {
		if n, err = t.put(n, h); err != nil {
			return nil, err
		}
	}

	if n, err = t.put(n, "\r\n"); err != nil {
		return nil, err
	}

	return t.buf[:n], nil
}

// Text frames payload as opcode text (UTF-8 bytes of s).
func (t *TxFramer) Text(s string) ([]byte, error) {
	return t.frame(OpcodeText, stringToBytes(s))
}

// Binary frames payload as opcode binary.
func (t *TxFramer) Binary(payload []byte) ([]byte, error) {
	return t.frame(OpcodeBinary, payload)
}

// Ping frames payload as opcode ping. payload must be at most 125 bytes
// (RFC 6455 section 5.5).
func (t *TxFramer) Ping(payload []byte) ([]byte, error) {
	if len(payload) > maxControlPayload {
		return nil, ErrControlFrameTooLarge
	}
	return t.frame(OpcodePing, payload)
}

// Pong frames payload as opcode pong, subject to the same 125-byte ceiling
// as Ping.
func (t *TxFramer) Pong(payload []byte) ([]byte, error) {
	if len(payload) > maxControlPayload {
		return nil, ErrControlFrameTooLarge
	}
	return t.frame(OpcodePong, payload)
}

// Close frames a 2-byte big-endian code followed by reason as the payload
// of an opcode-close frame.
func (t *TxFramer) Close(code uint16, reason string) ([]byte, error) {
	payload := make([]byte, 2+len(reason))
	payload[0] = byte(code >> 8)
	payload[1] = byte(code)
	copy(payload[2:], reason)
	if len(payload) > maxControlPayload {
		return nil, ErrControlFrameTooLarge
	}
	return t.frame(OpcodeClose, payload)
}

// frame lays down a complete RFC 6455 frame: FIN set, reserved bits clear,
// the given opcode, masked with a fresh random key when t.mask, payload
// streamed last. Returns the written prefix of the framer's buffer.
func (t *TxFramer) frame(opcode byte, payload []byte) ([]byte, error) {
	headerLen := 2
	switch {
	case len(payload) > 65535:
		headerLen += 8
	case len(payload) >= len16:
		headerLen += 2
	}
	if t.mask {
		headerLen += 4
	}

	total := headerLen + len(payload)
	if total > len(t.buf) {
		return nil, ErrBufferTooSmall
	}

	buf := t.buf
	buf[0] = finBit | (opcode & opcodeMask)

	n := 2
	switch {
	case len(payload) < len16:
		buf[1] = byte(len(payload))
	case len(payload) <= 65535:
		buf[1] = len16
		buf[2] = byte(len(payload) >> 8)
		buf[3] = byte(len(payload))
		n = 4
	default:
		buf[1] = len64
		l := uint64(len(payload))
		for i := 0; i < 8; i++ {
			buf[2+i] = byte(l >> (56 - 8*i))
		}
		n = 10
	}

	if t.mask {
		buf[1] |= maskBit

		var key [4]byte
		t.rand.Fill(key[:])
		copy(buf[n:n+4], key[:])
		n += 4

		dst := buf[n : n+len(payload)]
		copy(dst, payload)
		maskBytes(dst, key)
	} else {
		copy(buf[n:n+len(payload)], payload)
	}

	return buf[:total], nil
}

// put writes s at buf[n:] and returns the advanced offset, failing if s
// would overrun the framer's buffer.
func (t *TxFramer) put(n int, s string) (int, error) {
	if n+len(s) > len(t.buf) {
		return n, ErrBufferTooSmall
	}
	copy(t.buf[n:], s)
	return n + len(s), nil
}
