//go:build !unix

package word

func detectScratchSize() int { return defaultScratchSize }
