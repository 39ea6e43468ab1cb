// Package memrepo provides in-memory repository implementations for tests.
// Behavior mirrors the postgres repositories: not-found misses return
// common.ErrNotFound, duplicate emails return common.ErrConflict, and episode
// lookups are scoped by (podcastID, episodeID).
package memrepo

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"casthub/internal/common"
	"casthub/internal/domain/model"
	"casthub/internal/domain/repository"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *UserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := u
	return &found, nil
}

func (s *UserStore) Update(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	for id, u := range s.users {
		if id != user.ID && u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	s.users[user.ID] = *user
	return nil
}

type PodcastStore struct {
	mu       sync.Mutex
	podcasts map[string]model.Podcast
	order    []string
}

func NewPodcastStore() *PodcastStore {
	return &PodcastStore{podcasts: make(map[string]model.Podcast)}
}

var _ repository.PodcastRepository = (*PodcastStore)(nil)

func (s *PodcastStore) Create(_ context.Context, _ *sql.Tx, podcast *model.Podcast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.podcasts[podcast.ID]; ok {
		return fmt.Errorf("podcast with this id already exists: %w", common.ErrConflict)
	}
	s.podcasts[podcast.ID] = *podcast
	s.order = append(s.order, podcast.ID)
	return nil
}

func (s *PodcastStore) Update(_ context.Context, _ *sql.Tx, podcast *model.Podcast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.podcasts[podcast.ID]; !ok {
		return &common.PodcastNotFoundError{ID: podcast.ID}
	}
	s.podcasts[podcast.ID] = *podcast
	return nil
}

func (s *PodcastStore) FindByID(_ context.Context, id string) (*model.Podcast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.podcasts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := p
	return &found, nil
}

func (s *PodcastStore) ListAll(_ context.Context) ([]model.Podcast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	podcasts := []model.Podcast{}
	for _, id := range s.order {
		if p, ok := s.podcasts[id]; ok {
			podcasts = append(podcasts, p)
		}
	}
	return podcasts, nil
}

func (s *PodcastStore) Delete(_ context.Context, _ *sql.Tx, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.podcasts[id]; !ok {
		return &common.PodcastNotFoundError{ID: id}
	}
	delete(s.podcasts, id)
	return nil
}

type episodeKey struct {
	podcastID string
	episodeID string
}

type EpisodeStore struct {
	mu       sync.Mutex
	episodes map[episodeKey]model.Episode
	order    []episodeKey
}

func NewEpisodeStore() *EpisodeStore {
	return &EpisodeStore{episodes: make(map[episodeKey]model.Episode)}
}

var _ repository.EpisodeRepository = (*EpisodeStore)(nil)

func (s *EpisodeStore) Create(_ context.Context, episode *model.Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := episodeKey{episode.PodcastID, episode.ID}
	s.episodes[key] = *episode
	s.order = append(s.order, key)
	return nil
}

func (s *EpisodeStore) Update(_ context.Context, episode *model.Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := episodeKey{episode.PodcastID, episode.ID}
	if _, ok := s.episodes[key]; !ok {
		return &common.EpisodeNotFoundError{EpisodeID: episode.ID, PodcastID: episode.PodcastID}
	}
	s.episodes[key] = *episode
	return nil
}

func (s *EpisodeStore) FindByID(_ context.Context, podcastID, episodeID string) (*model.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.episodes[episodeKey{podcastID, episodeID}]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := e
	return &found, nil
}

func (s *EpisodeStore) ListByPodcastID(_ context.Context, podcastID string) ([]model.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	episodes := []model.Episode{}
	for _, key := range s.order {
		if key.podcastID != podcastID {
			continue
		}
		if e, ok := s.episodes[key]; ok {
			episodes = append(episodes, e)
		}
	}
	return episodes, nil
}

func (s *EpisodeStore) Delete(_ context.Context, podcastID, episodeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := episodeKey{podcastID, episodeID}
	if _, ok := s.episodes[key]; !ok {
		return &common.EpisodeNotFoundError{EpisodeID: episodeID, PodcastID: podcastID}
	}
	delete(s.episodes, key)
	return nil
}

func (s *EpisodeStore) DeleteByPodcastID(_ context.Context, _ *sql.Tx, podcastID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.episodes {
		if key.podcastID == podcastID {
			delete(s.episodes, key)
		}
	}
	return nil
}
