package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"casthub/internal/common"
	"casthub/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type PodcastRepository interface {
	Create(ctx context.Context, tx *sql.Tx, podcast *model.Podcast) error
	Update(ctx context.Context, tx *sql.Tx, podcast *model.Podcast) error
	FindByID(ctx context.Context, id string) (*model.Podcast, error)
	ListAll(ctx context.Context) ([]model.Podcast, error)
	Delete(ctx context.Context, tx *sql.Tx, id string) error
}

type pgPodcastRepository struct {
	db *sql.DB
}

func NewPgPodcastRepository(db *sql.DB) PodcastRepository {
	return &pgPodcastRepository{db: db}
}

func (r *pgPodcastRepository) Create(ctx context.Context, tx *sql.Tx, p *model.Podcast) error {
	query := `INSERT INTO podcasts (id, title, slug, category, rating, owner_id)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, p.ID, p.Title, p.Slug, p.Category, p.Rating, p.OwnerID)
	} else {
		_, err = r.db.ExecContext(ctx, query, p.ID, p.Title, p.Slug, p.Category, p.Rating, p.OwnerID)
	}

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("podcast with this id already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgPodcastRepository.Create: %w", err)
	}
	return nil
}

func (r *pgPodcastRepository) Update(ctx context.Context, tx *sql.Tx, p *model.Podcast) error {
	query := `UPDATE podcasts SET
	            title = $1, slug = $2, category = $3, rating = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5`

	var res sql.Result
	var err error
	if tx != nil {
		res, err = tx.ExecContext(ctx, query, p.Title, p.Slug, p.Category, p.Rating, p.ID)
	} else {
		res, err = r.db.ExecContext(ctx, query, p.Title, p.Slug, p.Category, p.Rating, p.ID)
	}
	if err != nil {
		return fmt.Errorf("pgPodcastRepository.Update: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		// Lost a race against a concurrent delete; terminal, not a defect.
		return &common.PodcastNotFoundError{ID: p.ID}
	}
	return nil
}

func (r *pgPodcastRepository) FindByID(ctx context.Context, id string) (*model.Podcast, error) {
	query := `SELECT id, title, slug, category, rating, owner_id, created_at, updated_at
	          FROM podcasts WHERE id = $1`
	podcast := &model.Podcast{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&podcast.ID, &podcast.Title, &podcast.Slug, &podcast.Category,
		&podcast.Rating, &podcast.OwnerID, &podcast.CreatedAt, &podcast.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgPodcastRepository.FindByID: %w", err)
	}
	return podcast, nil
}

func (r *pgPodcastRepository) ListAll(ctx context.Context) ([]model.Podcast, error) {
	query := `SELECT id, title, slug, category, rating, owner_id, created_at, updated_at
	          FROM podcasts ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgPodcastRepository.ListAll query: %w", err)
	}
	defer rows.Close()

	podcasts := []model.Podcast{}
	for rows.Next() {
		var p model.Podcast
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Category,
			&p.Rating, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgPodcastRepository.ListAll scan: %w", err)
		}
		podcasts = append(podcasts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgPodcastRepository.ListAll rows.Err: %w", err)
	}
	return podcasts, nil
}

func (r *pgPodcastRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	query := `DELETE FROM podcasts WHERE id = $1`

	var res sql.Result
	var err error
	if tx != nil {
		res, err = tx.ExecContext(ctx, query, id)
	} else {
		res, err = r.db.ExecContext(ctx, query, id)
	}
	if err != nil {
		return fmt.Errorf("pgPodcastRepository.Delete: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &common.PodcastNotFoundError{ID: id}
	}
	return nil
}
