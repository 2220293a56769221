package websocket

import "github.com/valyala/bytebufferpool"

// scratchPool supplies reusable staging buffers for the owned-copy helpers
// below, so repeatedly copying frames out of the RxFramer's buffer doesn't
// pay for a fresh temporary allocation on every call — only the final,
// caller-owned result is a real allocation.
var scratchPool bytebufferpool.Pool

// CopyText returns a Frame equivalent to f but with its own backing string,
// safe to retain past the RxFramer's next ProcessData call. f must be a
// KindText frame.
func CopyText(f Frame) Frame {
	buf := scratchPool.Get()
	defer scratchPool.Put(buf)

	buf.Reset()
	buf.WriteString(f.Text)
	return Frame{Kind: KindText, Text: string(buf.B)}
}

// CopyBinary returns a Frame equivalent to f but with its own backing
// array. f must be KindBinary, KindPing, or KindPong.
func CopyBinary(f Frame) Frame {
	buf := scratchPool.Get()
	defer scratchPool.Put(buf)

	buf.Reset()
	buf.Write(f.Binary)
	owned := make([]byte, len(buf.B))
	copy(owned, buf.B)
	return Frame{Kind: f.Kind, Binary: owned}
}

// CopyClose returns a Frame equivalent to f but with its own backing
// storage for the close reason. f must be KindClose.
func CopyClose(f Frame) Frame {
	buf := scratchPool.Get()
	defer scratchPool.Put(buf)

	buf.Reset()
	buf.WriteString(f.Text)
	return Frame{Kind: KindClose, CloseCode: f.CloseCode, Text: string(buf.B)}
}
