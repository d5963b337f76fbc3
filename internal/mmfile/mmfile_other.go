//go:build !unix

package mmfile

import "os"

// Map falls back to reading the whole container. On Windows a mapping holds a
// section handle that blocks writers sharing the file.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	return data, noCleanup, err
}

func noCleanup() error { return nil }
