package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"eventgallery-backend/internal/domains/share/model"
)

type postgresShareLinkRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresShareLinkRepository(pool *pgxpool.Pool) ShareLinkRepository {
	return &postgresShareLinkRepository{pool: pool}
}

const shareLinkColumns = `
	id, share_code, event_id, folder_name, image_ids,
	password_hash, expires_at, created_by, created_at
`

func (r *postgresShareLinkRepository) Create(ctx context.Context, link *model.ShareLink) error {
	query := `
		INSERT INTO share_links (
			id, share_code, event_id, folder_name, image_ids,
			password_hash, expires_at, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		link.ID,
		link.ShareCode,
		link.EventID,
		link.FolderName,
		pq.Array(uuidsToStrings(link.ImageIDs)),
		link.PasswordHash,
		link.ExpiresAt,
		link.CreatedBy,
		link.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrShareCodeTaken
		}
		return fmt.Errorf("failed to create share link: %w", err)
	}

	return nil
}

func (r *postgresShareLinkRepository) GetByCode(ctx context.Context, code string) (*model.ShareLink, error) {
	query := `SELECT ` + shareLinkColumns + ` FROM share_links WHERE share_code = $1`

	link, err := scanShareLink(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrShareNotFound
		}
		return nil, fmt.Errorf("failed to get share link: %w", err)
	}

	return link, nil
}

func (r *postgresShareLinkRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.ShareLink, error) {
	query := `
		SELECT ` + shareLinkColumns + `
		FROM share_links
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}
	defer rows.Close()

	var links []*model.ShareLink
	for rows.Next() {
		link, err := scanShareLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share link: %w", err)
		}
		links = append(links, link)
	}

	return links, nil
}

func (r *postgresShareLinkRepository) DeleteByCode(ctx context.Context, code string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM share_links WHERE share_code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete share link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrShareNotFound
	}

	return nil
}

func scanShareLink(row pgx.Row) (*model.ShareLink, error) {
	link := &model.ShareLink{}
	var imageIDs []string

	err := row.Scan(
		&link.ID,
		&link.ShareCode,
		&link.EventID,
		&link.FolderName,
		pq.Array(&imageIDs),
		&link.PasswordHash,
		&link.ExpiresAt,
		&link.CreatedBy,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	link.ImageIDs, err = stringsToUUIDs(imageIDs)
	if err != nil {
		return nil, fmt.Errorf("corrupt image id in share link: %w", err)
	}

	return link, nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func stringsToUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
