package websocket

import "unsafe"

// bytesToString converts a byte slice to a string without allocation.
// WARNING: the returned string aliases b's backing array. Do not modify b
// after calling this, and do not retain the string past the lifetime b is
// valid for (for a view produced by RxFramer, that is until the next
// ProcessData call).
//
// Allocation behavior: 0 allocs/op.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringToBytes converts a string to a byte slice without allocation.
// WARNING: the returned slice aliases s's backing array and must not be
// written to.
//
// Allocation behavior: 0 allocs/op.
func stringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
