package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"unicode/utf8"

	"filebox/internal/classify"
	"filebox/internal/config"
	"filebox/internal/filename"
	"filebox/internal/model"
	"filebox/internal/storage"
)

var (
	// ErrNoFiles means no multipart field carried a filename.
	ErrNoFiles = errors.New("no files were uploaded")
	// ErrNotFound means the storage id maps to no file on disk.
	ErrNotFound = errors.New("file not found")
	// ErrNotPreviewable means the file's category is not text or code.
	ErrNotPreviewable = errors.New("file cannot be previewed as text")
)

// TooManyFilesError fails an upload once the request exceeds the configured
// file count. Files fully written by earlier parts of the same request stay
// on disk; the caller must re-list.
type TooManyFilesError struct {
	Limit int
}

func (e *TooManyFilesError) Error() string {
	return fmt.Sprintf("Maximum %d files allowed", e.Limit)
}

// FileTooLargeError fails an upload when a single part exceeds the per-file
// ceiling. The partial write is removed before the error is returned.
type FileTooLargeError struct {
	Name    string
	LimitMB int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("File too large. Maximum size is %d MB", e.LimitMB)
}

// PreviewResult is a bounded text preview of a stored file.
type PreviewResult struct {
	Content  string
	Type     string
	Filename string
}

// FileService defines the use cases of the file manager. All methods are
// pure functions of the current filesystem content and their arguments;
// no state is held between calls.
type FileService interface {
	// Upload consumes multipart parts in arrival order, writing each part
	// that carries a filename under a fresh storage id. It enforces the
	// per-request file count and the per-file byte ceiling while streaming.
	// On failure, files completed by earlier parts remain on disk.
	Upload(ctx context.Context, parts *multipart.Reader) ([]model.FileRecord, error)

	// List scans the store and returns all files sorted by display name.
	List(ctx context.Context) ([]model.FileRecord, error)

	// Delete unlinks a file by storage id; ErrNotFound if absent.
	Delete(ctx context.Context, storageID string) error

	// Preview returns at most the configured number of bytes of a text or
	// code file, appending a truncation marker when the file is longer.
	Preview(ctx context.Context, storageID string) (*PreviewResult, error)

	// Stats combines a storage scan with the host disk probe.
	Stats(ctx context.Context) (*model.StorageStats, error)
}

type fileService struct {
	store storage.Store
	cfg   config.StoreConfig
}

// NewFileService constructs a FileService on the given store.
func NewFileService(store storage.Store, cfg config.StoreConfig) FileService {
	return &fileService{store: store, cfg: cfg}
}

func (s *fileService) Upload(ctx context.Context, parts *multipart.Reader) ([]model.FileRecord, error) {
	if parts == nil {
		return nil, ErrNoFiles
	}

	var files []model.FileRecord
	for {
		part, err := parts.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return files, fmt.Errorf("read multipart stream: %w", err)
		}
		if part.FileName() == "" {
			// Non-file form field; NextPart drains it on the next call.
			continue
		}
		if len(files) >= s.cfg.MaxFileCount {
			return files, &TooManyFilesError{Limit: s.cfg.MaxFileCount}
		}
		rec, err := s.ingest(ctx, part)
		if err != nil {
			return files, err
		}
		files = append(files, *rec)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return files, nil
}

// ingest streams one part to disk under a fresh storage id, counting bytes
// as they arrive. Any failure removes the partial file before returning.
func (s *fileService) ingest(ctx context.Context, part *multipart.Part) (*model.FileRecord, error) {
	safeName := filename.Sanitize(part.FileName())
	storageID := filename.NewStorageID(safeName)

	dst, err := s.store.Create(storageID)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	discard := func() {
		dst.Close()
		_ = s.store.Remove(storageID)
	}

	limit := s.cfg.MaxFileSizeBytes()
	var written int64
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			discard()
			return nil, err
		}
		n, rerr := part.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > limit {
				discard()
				return nil, &FileTooLargeError{Name: safeName, LimitMB: s.cfg.MaxFileSizeMB}
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				discard()
				return nil, fmt.Errorf("write file: %w", werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			discard()
			return nil, fmt.Errorf("read upload stream: %w", rerr)
		}
	}
	if err := dst.Close(); err != nil {
		_ = s.store.Remove(storageID)
		return nil, fmt.Errorf("close file: %w", err)
	}

	cat, canPreview := classify.ByName(safeName)
	return &model.FileRecord{
		Name:       safeName,
		StorageID:  storageID,
		Size:       uint64(written),
		Type:       string(cat),
		CanPreview: canPreview,
	}, nil
}

func (s *fileService) List(ctx context.Context) ([]model.FileRecord, error) {
	entries, err := s.store.List()
	if err != nil {
		return nil, err
	}

	files := make([]model.FileRecord, 0, len(entries))
	for _, e := range entries {
		display := filename.DisplayName(e.Name)
		cat, canPreview := classify.ByName(display)
		files = append(files, model.FileRecord{
			Name:       display,
			StorageID:  e.Name,
			Size:       uint64(e.Size),
			Type:       string(cat),
			CanPreview: canPreview,
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (s *fileService) Delete(ctx context.Context, storageID string) error {
	if err := s.store.Remove(storageID); err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *fileService) Preview(ctx context.Context, storageID string) (*PreviewResult, error) {
	display := filename.DisplayName(storageID)
	cat, _ := classify.ByName(display)
	if !cat.TextLike() {
		return nil, ErrNotPreviewable
	}

	f, err := s.store.Open(storageID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	limit := s.cfg.PreviewLimitBytes
	// Read one byte past the threshold so truncation is detectable without
	// reading the whole file.
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	truncated := int64(len(data)) > limit
	if truncated {
		data = data[:limit]
	}
	if !validText(data, truncated) {
		return nil, fmt.Errorf("read file: content is not valid UTF-8")
	}

	content := string(data)
	if truncated {
		content = fmt.Sprintf("%s...\n\n[Content truncated - showing first 10KB of %s]", content, display)
	}

	return &PreviewResult{Content: content, Type: string(cat), Filename: display}, nil
}

// validText checks UTF-8 validity of the served bytes. A truncated preview
// may end mid-rune, so up to utf8.UTFMax-1 trailing bytes are forgiven.
func validText(b []byte, truncated bool) bool {
	if !truncated {
		return utf8.Valid(b)
	}
	for i := 0; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.Valid(b[:len(b)-i]) {
			return true
		}
	}
	return false
}

func (s *fileService) Stats(ctx context.Context) (*model.StorageStats, error) {
	entries, err := s.store.List()
	if err != nil {
		return nil, err
	}

	var used uint64
	for _, e := range entries {
		used += uint64(e.Size)
	}

	quota := uint64(s.cfg.MaxStorageBytes())
	var usedPct float64
	if quota > 0 {
		usedPct = float64(used) / float64(quota) * 100
	}

	free, total, probeOK := s.store.DiskSpace()
	diskUsed := total - min(free, total)
	var diskPct float64
	if total > 0 {
		diskPct = float64(diskUsed) / float64(total) * 100
	}

	return &model.StorageStats{
		UsedBytes:          used,
		TotalFiles:         len(entries),
		UsedPercentage:     usedPct,
		FormattedUsed:      formatBytes(used),
		MaxSizeMB:          quota / 1024 / 1024,
		DiskFreeBytes:      free,
		DiskTotalBytes:     total,
		DiskUsedPercentage: diskPct,
		FormattedDiskFree:  formatBytes(free),
		FormattedDiskTotal: formatBytes(total),
		DiskProbeOK:        probeOK,
	}, nil
}

// formatBytes renders a 1024-base size with one decimal, topping out at GB.
// The exact format is part of the wire contract (formatted_* fields).
func formatBytes(n uint64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(n)
	idx := 0
	for size >= 1024 && idx < len(units)-1 {
		size /= 1024
		idx++
	}
	if idx == 0 {
		return fmt.Sprintf("%d %s", n, units[idx])
	}
	return fmt.Sprintf("%.1f %s", size, units[idx])
}
