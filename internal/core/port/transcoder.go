package port

import "context"

// Transcoder is an interface to define the external video transcoder
type Transcoder interface {
	Available(ctx context.Context) bool
	Transcode(ctx context.Context, inPath, outPath string) error
}
