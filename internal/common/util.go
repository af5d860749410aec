package common

// WipeByteArray overwrites the contents of b with zeros. Used for password
// buffers read from the terminal. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
