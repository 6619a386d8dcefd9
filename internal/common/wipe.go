// Package common contains small helpers shared across client layers.
package common

// WipeByteArray overwrites the slice with zeros. Use it to scrub passwords
// from memory once they have been handed to the transport.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
