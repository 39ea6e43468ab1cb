package service

import (
	"context"
	"errors"
	"fmt"

	"casthub/internal/common"
	"casthub/internal/domain/model"
	"casthub/internal/domain/repository"
)

// Capability names what an operation needs from a podcast-scoped entity.
type Capability int

const (
	CapabilityRead Capability = iota
	CapabilityMutate
)

// AccessValidator is the single integrity choke point for every operation that
// addresses an existing podcast or episode. Checks run in a fixed order:
// podcast existence, then episode existence scoped to that podcast, then
// ownership for mutations. The first failure aborts with a typed error and no
// side effects.
type AccessValidator struct {
	podcastRepo repository.PodcastRepository
	episodeRepo repository.EpisodeRepository
}

func NewAccessValidator(podcastRepo repository.PodcastRepository, episodeRepo repository.EpisodeRepository) *AccessValidator {
	return &AccessValidator{podcastRepo: podcastRepo, episodeRepo: episodeRepo}
}

// ResolvePodcast confirms the podcast exists and, for mutations, that the
// caller owns it. Reads never require an identity.
func (v *AccessValidator) ResolvePodcast(ctx context.Context, callerID, podcastID string, capability Capability) (*model.Podcast, error) {
	podcast, err := v.podcastRepo.FindByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, &common.PodcastNotFoundError{ID: podcastID}
		}
		return nil, fmt.Errorf("access: resolve podcast: %w", err)
	}

	if capability == CapabilityMutate && podcast.OwnerID != callerID {
		return nil, common.ErrNotOwner
	}
	return podcast, nil
}

// ResolveEpisode additionally confirms the episode exists under that podcast.
// Ownership is checked last, so a non-owner probing a missing episode learns
// only that it is missing.
func (v *AccessValidator) ResolveEpisode(ctx context.Context, callerID, podcastID, episodeID string, capability Capability) (*model.Podcast, *model.Episode, error) {
	podcast, err := v.podcastRepo.FindByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, &common.PodcastNotFoundError{ID: podcastID}
		}
		return nil, nil, fmt.Errorf("access: resolve podcast: %w", err)
	}

	episode, err := v.episodeRepo.FindByID(ctx, podcastID, episodeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, &common.EpisodeNotFoundError{EpisodeID: episodeID, PodcastID: podcastID}
		}
		return nil, nil, fmt.Errorf("access: resolve episode: %w", err)
	}

	if capability == CapabilityMutate && podcast.OwnerID != callerID {
		return nil, nil, common.ErrNotOwner
	}
	return podcast, episode, nil
}
