package domain

import "time"

// ArtifactKind classifies the files a recording session produces on disk.
type ArtifactKind int

const (
	// KindPartial is the in-progress upload target, renamed on finalize.
	KindPartial ArtifactKind = iota
	// KindRaw is the finalized browser-produced container.
	KindRaw
	// KindTranscoded is the broadly playable container produced by the
	// external transcoder.
	KindTranscoded
	// KindSnapshot is the per-session still image.
	KindSnapshot
)

// Ext returns the filename extension for the kind, dot included.
func (k ArtifactKind) Ext() string {
	switch k {
	case KindPartial:
		return ".webm.partial"
	case KindRaw:
		return ".webm"
	case KindTranscoded:
		return ".mp4"
	case KindSnapshot:
		return ".jpg"
	default:
		return ""
	}
}

// Filename derives the storage filename for a session's artifact of this kind.
func (k ArtifactKind) Filename(sessionID string) string {
	return sessionID + k.Ext()
}

// VideoEntry is the read-only listing view of a stored video artifact,
// computed on demand from filesystem metadata.
type VideoEntry struct {
	Filename string    `json:"filename"`
	Bytes    int64     `json:"bytes"`
	Modified time.Time `json:"modified"`
	URL      string    `json:"url"`
	Type     string    `json:"type"`
}

// FinalizeResult reports the artifacts a finalize call settled on. MP4 is
// empty when no transcoded artifact exists.
type FinalizeResult struct {
	WebM string
	MP4  string
	At   time.Time
}
