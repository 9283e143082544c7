package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventgallery-backend/internal/domains/guest/model"
)

type postgresGuestRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &postgresGuestRepository{pool: pool}
}

const guestColumns = `id, event_id, name, email, password_hash, created_at`

func (r *postgresGuestRepository) Create(ctx context.Context, guest *model.Guest) error {
	query := `
		INSERT INTO guests (id, event_id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		guest.ID,
		guest.EventID,
		guest.Name,
		guest.Email,
		guest.PasswordHash,
		guest.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrGuestEmailTaken
		}
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

func (r *postgresGuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresGuestRepository) GetByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*model.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 AND email = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, eventID, email))
}

func (r *postgresGuestRepository) scanOne(row pgx.Row) (*model.Guest, error) {
	guest := &model.Guest{}
	err := row.Scan(
		&guest.ID,
		&guest.EventID,
		&guest.Name,
		&guest.Email,
		&guest.PasswordHash,
		&guest.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	return guest, nil
}
