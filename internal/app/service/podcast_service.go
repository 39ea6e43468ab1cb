package service

import (
	"context"
	"database/sql"
	"fmt"

	"casthub/internal/common"
	"casthub/internal/domain/model"
	"casthub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// DirectoryCache holds the public podcast listing. Implementations must treat
// every call as best-effort; the service never depends on a hit.
type DirectoryCache interface {
	Get(ctx context.Context) ([]model.Podcast, bool)
	Set(ctx context.Context, podcasts []model.Podcast)
	Invalidate(ctx context.Context)
}

type PodcastService struct {
	podcastRepo repository.PodcastRepository
	episodeRepo repository.EpisodeRepository
	access      *AccessValidator
	cache       DirectoryCache // optional
	db          *sql.DB        // optional; transactions are skipped without a handle
}

func NewPodcastService(
	podcastRepo repository.PodcastRepository,
	episodeRepo repository.EpisodeRepository,
	access *AccessValidator,
	cache DirectoryCache,
	db *sql.DB,
) *PodcastService {
	return &PodcastService{
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
		access:      access,
		cache:       cache,
		db:          db,
	}
}

type CreatePodcastRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type UpdatePodcastRequest struct {
	Title    *string  `json:"title,omitempty"`
	Category *string  `json:"category,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

func (s *PodcastService) CreatePodcast(ctx context.Context, callerID, callerRole string, req CreatePodcastRequest) (*model.Podcast, error) {
	if callerRole != model.RoleHost {
		return nil, common.ErrNotHost
	}
	if req.Title == "" || req.Category == "" {
		return nil, common.ErrBadRequest
	}

	podcast := &model.Podcast{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Slug:     slug.Make(req.Title),
		Category: req.Category,
		Rating:   0,
		OwnerID:  callerID,
	}

	if err := s.podcastRepo.Create(ctx, nil, podcast); err != nil {
		return nil, fmt.Errorf("failed to create podcast: %w", err)
	}

	s.invalidateDirectory(ctx)
	return podcast, nil
}

func (s *PodcastService) ListPodcasts(ctx context.Context) ([]model.Podcast, error) {
	if s.cache != nil {
		if podcasts, ok := s.cache.Get(ctx); ok {
			return podcasts, nil
		}
	}

	podcasts, err := s.podcastRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, podcasts)
	}
	return podcasts, nil
}

func (s *PodcastService) GetPodcast(ctx context.Context, podcastID string) (*model.Podcast, error) {
	return s.access.ResolvePodcast(ctx, "", podcastID, CapabilityRead)
}

func (s *PodcastService) UpdatePodcast(ctx context.Context, callerID, podcastID string, req UpdatePodcastRequest) (*model.Podcast, error) {
	podcast, err := s.access.ResolvePodcast(ctx, callerID, podcastID, CapabilityMutate)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, common.ErrBadRequest
		}
		podcast.Title = *req.Title
		podcast.Slug = slug.Make(*req.Title)
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, common.ErrBadRequest
		}
		podcast.Category = *req.Category
	}
	if req.Rating != nil {
		podcast.Rating = *req.Rating
	}

	if err := s.podcastRepo.Update(ctx, nil, podcast); err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	return podcast, nil
}

// DeletePodcast removes the podcast and all of its episodes in one unit of
// work: children first, then the parent, so the behavior does not lean on a
// database-level cascade.
func (s *PodcastService) DeletePodcast(ctx context.Context, callerID, podcastID string) error {
	if _, err := s.access.ResolvePodcast(ctx, callerID, podcastID, CapabilityMutate); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.episodeRepo.DeleteByPodcastID(ctx, tx, podcastID); err != nil {
			return err
		}
		return s.podcastRepo.Delete(ctx, tx, podcastID)
	})
	if err != nil {
		return err
	}

	s.invalidateDirectory(ctx)
	return nil
}

func (s *PodcastService) invalidateDirectory(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// withTx runs fn inside a transaction when a database handle is configured;
// repositories fall back to their own connections otherwise.
func (s *PodcastService) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if s.db == nil {
		return fn(nil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if not committed

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
