package service

import (
	"context"
	"fmt"

	"casthub/internal/common"
	"casthub/internal/domain/model"
	"casthub/internal/domain/repository"

	"github.com/google/uuid"
)

type EpisodeService struct {
	episodeRepo repository.EpisodeRepository
	access      *AccessValidator
}

func NewEpisodeService(episodeRepo repository.EpisodeRepository, access *AccessValidator) *EpisodeService {
	return &EpisodeService{episodeRepo: episodeRepo, access: access}
}

type CreateEpisodeRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type UpdateEpisodeRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (s *EpisodeService) ListEpisodes(ctx context.Context, podcastID string) ([]model.Episode, error) {
	if _, err := s.access.ResolvePodcast(ctx, "", podcastID, CapabilityRead); err != nil {
		return nil, err
	}
	return s.episodeRepo.ListByPodcastID(ctx, podcastID)
}

func (s *EpisodeService) CreateEpisode(ctx context.Context, callerID, podcastID string, req CreateEpisodeRequest) (*model.Episode, error) {
	if _, err := s.access.ResolvePodcast(ctx, callerID, podcastID, CapabilityMutate); err != nil {
		return nil, err
	}
	if req.Title == "" || req.Category == "" {
		return nil, common.ErrBadRequest
	}

	episode := &model.Episode{
		ID:        uuid.NewString(),
		PodcastID: podcastID,
		Title:     req.Title,
		Category:  req.Category,
	}

	if err := s.episodeRepo.Create(ctx, episode); err != nil {
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}
	return episode, nil
}

func (s *EpisodeService) UpdateEpisode(ctx context.Context, callerID, podcastID, episodeID string, req UpdateEpisodeRequest) (*model.Episode, error) {
	_, episode, err := s.access.ResolveEpisode(ctx, callerID, podcastID, episodeID, CapabilityMutate)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, common.ErrBadRequest
		}
		episode.Title = *req.Title
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, common.ErrBadRequest
		}
		episode.Category = *req.Category
	}

	if err := s.episodeRepo.Update(ctx, episode); err != nil {
		return nil, err
	}
	return episode, nil
}

func (s *EpisodeService) DeleteEpisode(ctx context.Context, callerID, podcastID, episodeID string) error {
	if _, _, err := s.access.ResolveEpisode(ctx, callerID, podcastID, episodeID, CapabilityMutate); err != nil {
		return err
	}
	return s.episodeRepo.Delete(ctx, podcastID, episodeID)
}
