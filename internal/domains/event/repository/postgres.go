package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventgallery-backend/internal/domains/event/model"
)

type postgresEventRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEventRepository(pool *pgxpool.Pool) EventRepository {
	return &postgresEventRepository{pool: pool}
}

func (r *postgresEventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		INSERT INTO events (
			id, code, name, event_date, venue,
			created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Code,
		event.Name,
		event.EventDate,
		event.Venue,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrEventCodeTaken
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
		SELECT id, code, name, event_date, venue, created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresEventRepository) GetByCode(ctx context.Context, code string) (*model.Event, error) {
	query := `
		SELECT id, code, name, event_date, venue, created_by, created_at, updated_at
		FROM events
		WHERE code = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, code))
}

func (r *postgresEventRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*model.Event, error) {
	query := `
		SELECT id, code, name, event_date, venue, created_by, created_at, updated_at
		FROM events
		WHERE created_by = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		event := &model.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Code,
			&event.Name,
			&event.EventDate,
			&event.Venue,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *postgresEventRepository) scanOne(row pgx.Row) (*model.Event, error) {
	event := &model.Event{}
	err := row.Scan(
		&event.ID,
		&event.Code,
		&event.Name,
		&event.EventDate,
		&event.Venue,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}
