package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"screencast/internal/core/domain"
	"sort"
	"time"
)

// Store keeps every artifact as a flat file in a single directory, named
// {session}{ext}. Appends and renames rely on the filesystem's own atomicity;
// concurrent writers for the same session are not serialized here.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates the storage directory if absent and returns a Store
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Path derives the on-disk path for a session's artifact of the given kind.
func (s *Store) Path(sessionID string, kind domain.ArtifactKind) string {
	return filepath.Join(s.dir, kind.Filename(sessionID))
}

// AppendChunk appends body to the session's partial file, creating it if
// absent, and returns the partial file's new total size.
func (s *Store) AppendChunk(ctx context.Context, sessionID string, body io.Reader) (int64, error) {
	f, err := os.OpenFile(s.Path(sessionID, domain.KindPartial), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to open partial file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to append chunk: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to stat partial file: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close partial file: %w", err)
	}
	return info.Size(), nil
}

// WriteSnapshot truncates and rewrites the session's snapshot image.
func (s *Store) WriteSnapshot(ctx context.Context, sessionID string, body io.Reader) (string, error) {
	filename := domain.KindSnapshot.Filename(sessionID)

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close snapshot file: %w", err)
	}
	return filename, nil
}

// Promote renames the session's partial file to its finalized name. The
// partial is consumed exactly once; a second Promote fails because the source
// is gone.
func (s *Store) Promote(ctx context.Context, sessionID string) error {
	from := s.Path(sessionID, domain.KindPartial)
	to := s.Path(sessionID, domain.KindRaw)

	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("failed to promote partial file: %w", err)
	}
	return nil
}

// Exists reports whether the session's artifact of the given kind is on disk.
func (s *Store) Exists(ctx context.Context, sessionID string, kind domain.ArtifactKind) (bool, error) {
	_, err := os.Stat(s.Path(sessionID, kind))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat artifact: %w", err)
}

// ListVideos scans the storage directory for transcoded and raw videos and
// returns their listing entries sorted by descending modification time.
// Transcoded files sort before raw ones on equal timestamps.
func (s *Store) ListVideos(ctx context.Context) ([]domain.VideoEntry, error) {
	entries := make([]domain.VideoEntry, 0)

	patterns := []struct {
		glob string
		typ  string
	}{
		{"*" + domain.KindTranscoded.Ext(), "mp4"},
		{"*" + domain.KindRaw.Ext(), "webm"},
	}

	for _, p := range patterns {
		matches, err := filepath.Glob(filepath.Join(s.dir, p.glob))
		if err != nil {
			return nil, fmt.Errorf("failed to scan storage dir: %w", err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				// raced with a concurrent delete
				continue
			}
			name := filepath.Base(match)
			entries = append(entries, domain.VideoEntry{
				Filename: name,
				Bytes:    info.Size(),
				Modified: info.ModTime().UTC().Truncate(time.Second),
				URL:      "/video/" + name,
				Type:     p.typ,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries, nil
}

// LatestSnapshot returns the filename of the most recently modified snapshot.
func (s *Store) LatestSnapshot(ctx context.Context) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+domain.KindSnapshot.Ext()))
	if err != nil {
		return "", fmt.Errorf("failed to scan storage dir: %w", err)
	}

	var latest string
	var latestMod time.Time
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = filepath.Base(match)
			latestMod = info.ModTime()
		}
	}

	if latest == "" {
		return "", domain.ErrSnapshotNotFound
	}
	return latest, nil
}

// Open opens an exact named artifact for streaming. The name must be a bare
// filename; anything resolving outside the storage directory is rejected as
// not found.
func (s *Store) Open(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return nil, time.Time{}, domain.ErrArtifactNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, time.Time{}, domain.ErrArtifactNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to open artifact: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, fmt.Errorf("failed to stat artifact: %w", err)
	}
	return f, info.ModTime(), nil
}

// RemoveStalePartials deletes partial files last modified before olderThan
// and returns how many were removed.
func (s *Store) RemoveStalePartials(ctx context.Context, olderThan time.Time) (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+domain.KindPartial.Ext()))
	if err != nil {
		return 0, fmt.Errorf("failed to scan storage dir: %w", err)
	}

	removed := 0
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}
		if err := os.Remove(match); err != nil {
			s.logger.Warn("failed to remove stale partial", "file", match, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
