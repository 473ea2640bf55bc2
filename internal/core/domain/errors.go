package domain

import "errors"

// ErrRecordingNotFound is an error thrown when no partial or finalized video
// exists for a session
var ErrRecordingNotFound = errors.New("no recording")

// ErrSnapshotNotFound is an error thrown when no snapshot image exists
var ErrSnapshotNotFound = errors.New("no snapshot")

// ErrArtifactNotFound is an error thrown when a named artifact does not exist
var ErrArtifactNotFound = errors.New("artifact not found")
