package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordingFinalized is published after a fresh finalize settles the raw
// artifact. MP4 is empty when transcoding was unavailable or failed.
type RecordingFinalized struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	WebM      string    `json:"webm"`
	MP4       string    `json:"mp4,omitempty"`
	At        time.Time `json:"at"`
}
