//go:build unix

package word

import "golang.org/x/sys/unix"

// detectScratchSize probes the host page size via x/sys/unix, falling back
// to defaultScratchSize if the probe reports a non-positive size.
func detectScratchSize() int {
	if n := unix.Getpagesize(); n > 0 {
		return n
	}
	return defaultScratchSize
}
