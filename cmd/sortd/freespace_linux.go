//go:build linux

package main

import "golang.org/x/sys/unix"

// freeSpace reports the bytes available to unprivileged users on the volume
// holding path. Zero means unknown; the summary then omits the line.
func freeSpace(path string) uint64 {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0
	}
	return stat.Bavail * uint64(stat.Bsize)
}
