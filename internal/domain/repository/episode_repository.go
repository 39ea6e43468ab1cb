package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"casthub/internal/common"
	"casthub/internal/domain/model"
)

// EpisodeRepository keys every single-episode operation by
// (podcastID, episodeID). An episode id that exists under a different podcast
// is indistinguishable from one that does not exist at all.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *model.Episode) error
	Update(ctx context.Context, episode *model.Episode) error
	FindByID(ctx context.Context, podcastID, episodeID string) (*model.Episode, error)
	ListByPodcastID(ctx context.Context, podcastID string) ([]model.Episode, error)
	Delete(ctx context.Context, podcastID, episodeID string) error
	DeleteByPodcastID(ctx context.Context, tx *sql.Tx, podcastID string) error
}

type pgEpisodeRepository struct {
	db *sql.DB
}

func NewPgEpisodeRepository(db *sql.DB) EpisodeRepository {
	return &pgEpisodeRepository{db: db}
}

func (r *pgEpisodeRepository) Create(ctx context.Context, e *model.Episode) error {
	query := `INSERT INTO episodes (id, podcast_id, title, category)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.PodcastID, e.Title, e.Category)
	if err != nil {
		return fmt.Errorf("pgEpisodeRepository.Create: %w", err)
	}
	return nil
}

func (r *pgEpisodeRepository) Update(ctx context.Context, e *model.Episode) error {
	query := `UPDATE episodes SET title = $1, category = $2, updated_at = CURRENT_TIMESTAMP
	          WHERE podcast_id = $3 AND id = $4`
	res, err := r.db.ExecContext(ctx, query, e.Title, e.Category, e.PodcastID, e.ID)
	if err != nil {
		return fmt.Errorf("pgEpisodeRepository.Update: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &common.EpisodeNotFoundError{EpisodeID: e.ID, PodcastID: e.PodcastID}
	}
	return nil
}

func (r *pgEpisodeRepository) FindByID(ctx context.Context, podcastID, episodeID string) (*model.Episode, error) {
	query := `SELECT id, podcast_id, title, category, created_at, updated_at
	          FROM episodes WHERE podcast_id = $1 AND id = $2`
	episode := &model.Episode{}
	err := r.db.QueryRowContext(ctx, query, podcastID, episodeID).Scan(
		&episode.ID, &episode.PodcastID, &episode.Title, &episode.Category,
		&episode.CreatedAt, &episode.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEpisodeRepository.FindByID: %w", err)
	}
	return episode, nil
}

func (r *pgEpisodeRepository) ListByPodcastID(ctx context.Context, podcastID string) ([]model.Episode, error) {
	query := `SELECT id, podcast_id, title, category, created_at, updated_at
	          FROM episodes WHERE podcast_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, podcastID)
	if err != nil {
		return nil, fmt.Errorf("pgEpisodeRepository.ListByPodcastID query: %w", err)
	}
	defer rows.Close()

	episodes := []model.Episode{}
	for rows.Next() {
		var e model.Episode
		if err := rows.Scan(&e.ID, &e.PodcastID, &e.Title, &e.Category,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgEpisodeRepository.ListByPodcastID scan: %w", err)
		}
		episodes = append(episodes, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEpisodeRepository.ListByPodcastID rows.Err: %w", err)
	}
	return episodes, nil
}

func (r *pgEpisodeRepository) Delete(ctx context.Context, podcastID, episodeID string) error {
	query := `DELETE FROM episodes WHERE podcast_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, query, podcastID, episodeID)
	if err != nil {
		return fmt.Errorf("pgEpisodeRepository.Delete: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &common.EpisodeNotFoundError{EpisodeID: episodeID, PodcastID: podcastID}
	}
	return nil
}

func (r *pgEpisodeRepository) DeleteByPodcastID(ctx context.Context, tx *sql.Tx, podcastID string) error {
	query := `DELETE FROM episodes WHERE podcast_id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, podcastID)
	} else {
		_, err = r.db.ExecContext(ctx, query, podcastID)
	}
	if err != nil {
		return fmt.Errorf("pgEpisodeRepository.DeleteByPodcastID: %w", err)
	}
	return nil
}
