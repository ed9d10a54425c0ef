package storage

import "golang.org/x/sys/unix"

// Fallback disk figures reported when the capacity probe fails, so the
// storage endpoint keeps answering. Callers can tell them apart from real
// numbers via the ok flag.
const (
	fallbackDiskFree  = 250 * 1024 * 1024 * 1024
	fallbackDiskTotal = 500 * 1024 * 1024 * 1024
)

// diskSpace probes the volume hosting path via statfs and returns
// (free, total, ok). On failure it substitutes the fallback constants
// with ok=false.
func diskSpace(path string) (uint64, uint64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return fallbackDiskFree, fallbackDiskTotal, false
	}
	bsize := uint64(st.Bsize)
	free := st.Bavail * bsize
	total := st.Blocks * bsize
	if total == 0 {
		return fallbackDiskFree, fallbackDiskTotal, false
	}
	return free, total, true
}
