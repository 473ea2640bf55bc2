package library

import (
	"context"
	"screencast/internal/core/domain"
	"strings"
)

// LatestVideo picks the artifact to serve for the "latest" endpoint: the most
// recent transcoded video when any exists, the most recent video otherwise.
func (l *libraryService) LatestVideo(ctx context.Context) (*domain.VideoEntry, error) {
	videos, err := l.store.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, domain.ErrArtifactNotFound
	}

	for _, v := range videos {
		if strings.HasSuffix(v.Filename, domain.KindTranscoded.Ext()) {
			return &v, nil
		}
	}

	return &videos[0], nil
}
