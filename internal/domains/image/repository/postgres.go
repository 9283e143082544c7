package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventgallery-backend/internal/domains/image/model"
)

type postgresImageRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresImageRepository(pool *pgxpool.Pool) ImageRepository {
	return &postgresImageRepository{pool: pool}
}

const imageColumns = `
	id, event_id, guest_id, file_name, original_file_name,
	storage_url, file_size_mb, content_type, uploaded_at
`

func (r *postgresImageRepository) Create(ctx context.Context, image *model.Image) error {
	query := `
		INSERT INTO images (
			id, event_id, guest_id, file_name, original_file_name,
			storage_url, file_size_mb, content_type, uploaded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		image.ID,
		image.EventID,
		image.GuestID,
		image.FileName,
		image.OriginalFileName,
		image.StorageURL,
		image.FileSizeMB,
		image.ContentType,
		image.UploadedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *postgresImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	image := &model.Image{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.EventID,
		&image.GuestID,
		&image.FileName,
		&image.OriginalFileName,
		&image.StorageURL,
		&image.FileSizeMB,
		&image.ContentType,
		&image.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return image, nil
}

func (r *postgresImageRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Image, error) {
	if len(ids) == 0 {
		return []*model.Image{}, nil
	}

	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE id = ANY($1)
		ORDER BY uploaded_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %w", err)
	}
	defer rows.Close()

	return scanImages(rows)
}

func (r *postgresImageRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.ImageWithGuest, error) {
	query := `
		SELECT
			i.id, i.event_id, i.guest_id, i.file_name, i.original_file_name,
			i.storage_url, i.file_size_mb, i.content_type, i.uploaded_at,
			g.name
		FROM images i
		JOIN guests g ON g.id = i.guest_id
		WHERE i.event_id = $1
		ORDER BY i.uploaded_at ASC, i.id ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event images: %w", err)
	}
	defer rows.Close()

	var images []*model.ImageWithGuest
	for rows.Next() {
		image := &model.ImageWithGuest{}
		err := rows.Scan(
			&image.ID,
			&image.EventID,
			&image.GuestID,
			&image.FileName,
			&image.OriginalFileName,
			&image.StorageURL,
			&image.FileSizeMB,
			&image.ContentType,
			&image.UploadedAt,
			&image.GuestName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, image)
	}

	return images, nil
}

func (r *postgresImageRepository) ListByEventAndGuest(ctx context.Context, eventID, guestID uuid.UUID) ([]*model.Image, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM images
		WHERE event_id = $1 AND guest_id = $2
		ORDER BY uploaded_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID, guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guest images: %w", err)
	}
	defer rows.Close()

	return scanImages(rows)
}

func (r *postgresImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrImageNotFound
	}

	return nil
}

func scanImages(rows pgx.Rows) ([]*model.Image, error) {
	var images []*model.Image
	for rows.Next() {
		image := &model.Image{}
		err := rows.Scan(
			&image.ID,
			&image.EventID,
			&image.GuestID,
			&image.FileName,
			&image.OriginalFileName,
			&image.StorageURL,
			&image.FileSizeMB,
			&image.ContentType,
			&image.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, image)
	}

	return images, nil
}
