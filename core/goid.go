package core

import (
	"runtime"
)

// GoroutineID returns the id of the calling goroutine, parsed from the
// header line of its stack trace ("goroutine 42 [running]:"). The id is
// stable for the goroutine's lifetime and unique among live goroutines.
// It returns 0 if the header cannot be parsed.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if len(b) < len(prefix) || string(b[:len(prefix)]) != prefix {
		return 0
	}

	var id uint64
	for _, c := range b[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
