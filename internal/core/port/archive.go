package port

import "context"

// ArtifactArchiver is an interface to define the object-storage archive for
// finalized recordings
type ArtifactArchiver interface {
	Archive(ctx context.Context, localPath, objectName string) error
}
