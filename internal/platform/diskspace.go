package platform

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// MinFreeSpace is the free space below which a preflight warning is raised
const MinFreeSpace uint64 = 1 << 30

// FreeSpace returns the number of bytes available on the volume holding dir
func FreeSpace(dir string) (uint64, error) {
	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read disk usage for %s: %w", dir, err)
	}
	return usage.Free, nil
}

// CheckFreeSpace returns an error when the volume holding dir has less than
// minFree bytes available. Failures to read disk usage are returned as is.
func CheckFreeSpace(dir string, minFree uint64) (uint64, error) {
	free, err := FreeSpace(dir)
	if err != nil {
		return 0, err
	}
	if free < minFree {
		return free, fmt.Errorf("low disk space in %s: %d bytes free", dir, free)
	}
	return free, nil
}
