// Package synctext implements the two byte-level transforms ID3v2
// layers on top of raw tag bytes: unsynchronisation (resync) and
// synch-safe integers.
package synctext

// Resync removes every 0x00 that immediately follows a 0xFF, producing
// a new buffer. It never mutates b.
//
// Resync is idempotent on already-synchronised data: once no 0xFF 0x00
// pair remains, a second pass is a no-op copy.
func Resync(b []byte) []byte {
	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); i++ {
		out = append(out, b[i])

		if b[i] == 0xff && i+1 < len(b) && b[i+1] == 0x00 {
			i++
		}
	}

	return out
}
