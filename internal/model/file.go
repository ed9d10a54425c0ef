package model

// FileRecord describes one stored file as it appears on the wire.
// It is derived from the filesystem on every request and never persisted;
// the storage id (json "path") is the primary key for download/delete/preview.
type FileRecord struct {
	Name       string `json:"name"`
	StorageID  string `json:"path"`
	Size       uint64 `json:"size"`
	Type       string `json:"file_type"`
	CanPreview bool   `json:"can_preview"`
}

// StorageStats combines the upload directory scan with a host disk probe.
// used_percentage is measured against the configured soft quota, which is
// advisory only and not enforced at write time.
type StorageStats struct {
	UsedBytes          uint64  `json:"used_bytes"`
	TotalFiles         int     `json:"total_files"`
	UsedPercentage     float64 `json:"used_percentage"`
	FormattedUsed      string  `json:"formatted_used"`
	MaxSizeMB          uint64  `json:"max_size_mb"`
	DiskFreeBytes      uint64  `json:"disk_free_bytes"`
	DiskTotalBytes     uint64  `json:"disk_total_bytes"`
	DiskUsedPercentage float64 `json:"disk_used_percentage"`
	FormattedDiskFree  string  `json:"formatted_disk_free"`
	FormattedDiskTotal string  `json:"formatted_disk_total"`
	// DiskProbeOK is false when the capacity probe failed and the disk
	// figures are fallback constants.
	DiskProbeOK bool `json:"disk_probe_ok"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Files   []FileRecord `json:"files"`
}

// FileListResponse is returned by GET /files.
type FileListResponse struct {
	Files []FileRecord `json:"files"`
}

// ActionResponse is the generic success/message payload (delete, logout).
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PreviewResponse carries a bounded text preview or an error, never both.
type PreviewResponse struct {
	Content  *string `json:"content"`
	Type     string  `json:"type,omitempty"`
	Filename string  `json:"filename,omitempty"`
	Error    *string `json:"error"`
}
