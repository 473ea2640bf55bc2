package recording

import (
	"context"
	"screencast/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// Finalize settles a session's recording. If the session was already
// finalized it reports the existing artifacts without touching them.
// Otherwise the partial file is renamed to its final name and a transcode is
// attempted; transcoder failures are swallowed and only drop the transcoded
// artifact from the result. Archiving and event publishing happen once, on a
// fresh finalize, and are best effort.
func (s *recordingService) Finalize(ctx context.Context, sessionID string) (*domain.FinalizeResult, error) {

	webmName := domain.KindRaw.Filename(sessionID)
	mp4Name := domain.KindTranscoded.Filename(sessionID)

	rawExists, err := s.store.Exists(ctx, sessionID, domain.KindRaw)
	if err != nil {
		return nil, err
	}

	if rawExists {
		result := &domain.FinalizeResult{
			WebM: webmName,
			At:   time.Now().UTC().Truncate(time.Second),
		}
		mp4Exists, existsErr := s.store.Exists(ctx, sessionID, domain.KindTranscoded)
		if existsErr != nil {
			return nil, existsErr
		}
		if mp4Exists {
			result.MP4 = mp4Name
		}
		return result, nil
	}

	partialExists, err := s.store.Exists(ctx, sessionID, domain.KindPartial)
	if err != nil {
		return nil, err
	}
	if !partialExists {
		return nil, domain.ErrRecordingNotFound
	}

	if err := s.store.Promote(ctx, sessionID); err != nil {
		return nil, err
	}

	result := &domain.FinalizeResult{
		WebM: webmName,
		At:   time.Now().UTC().Truncate(time.Second),
	}

	if s.transcoder.Available(ctx) {
		in := s.store.Path(sessionID, domain.KindRaw)
		out := s.store.Path(sessionID, domain.KindTranscoded)
		if err := s.transcoder.Transcode(ctx, in, out); err != nil {
			s.logger.Warn("transcode failed", "session", sessionID, "error", err)
		} else {
			result.MP4 = mp4Name
		}
	} else {
		s.logger.Info("transcoder unavailable, keeping raw artifact only", "session", sessionID)
	}

	s.archiveArtifacts(ctx, sessionID, result)
	s.publishFinalized(ctx, sessionID, result)

	return result, nil
}

func (s *recordingService) archiveArtifacts(ctx context.Context, sessionID string, result *domain.FinalizeResult) {
	if s.archiver == nil {
		return
	}

	if err := s.archiver.Archive(ctx, s.store.Path(sessionID, domain.KindRaw), result.WebM); err != nil {
		s.logger.Warn("artifact archive failed", "session", sessionID, "object", result.WebM, "error", err)
	}
	if result.MP4 == "" {
		return
	}
	if err := s.archiver.Archive(ctx, s.store.Path(sessionID, domain.KindTranscoded), result.MP4); err != nil {
		s.logger.Warn("artifact archive failed", "session", sessionID, "object", result.MP4, "error", err)
	}
}

func (s *recordingService) publishFinalized(ctx context.Context, sessionID string, result *domain.FinalizeResult) {
	if s.publisher == nil {
		return
	}

	event := domain.RecordingFinalized{
		ID:        uuid.New(),
		SessionID: sessionID,
		WebM:      result.WebM,
		MP4:       result.MP4,
		At:        result.At,
	}
	if err := s.publisher.PublishFinalized(ctx, event); err != nil {
		s.logger.Warn("finalize event publish failed", "session", sessionID, "error", err)
	}
}
