package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epeers/estateplan/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrClientNotFound = errors.New("client not found")
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// Create creates a new client
func (r *ClientRepository) Create(ctx context.Context, tx pgx.Tx, c *models.Client) error {
	query := `
		INSERT INTO client (owner, client_name, spouse_name, married, created, updated)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created, updated
	`
	return tx.QueryRow(ctx, query, c.AdvisorID, c.ClientName, c.SpouseName, c.Married).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	query := `
		SELECT id, owner, client_name, spouse_name, married, created, updated
		FROM client
		WHERE id = $1
	`
	c := &models.Client{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.AdvisorID, &c.ClientName, &c.SpouseName, &c.Married, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// Update updates a client's names and marital status
func (r *ClientRepository) Update(ctx context.Context, tx pgx.Tx, c *models.Client) error {
	query := `
		UPDATE client
		SET client_name = $1, spouse_name = $2, married = $3, updated = NOW()
		WHERE id = $4
		RETURNING updated
	`
	err := tx.QueryRow(ctx, query, c.ClientName, c.SpouseName, c.Married, c.ID).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrClientNotFound
	}
	return err
}

// Touch bumps the client's updated time. Every document write calls it so
// cached results keyed on the updated time go stale.
func (r *ClientRepository) Touch(ctx context.Context, tx pgx.Tx, id int64) (time.Time, error) {
	var updated time.Time
	err := tx.QueryRow(ctx, `UPDATE client SET updated = NOW() WHERE id = $1 RETURNING updated`, id).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrClientNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to touch client: %w", err)
	}
	return updated, nil
}

// Delete deletes a client. Stored documents go with it.
func (r *ClientRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	result, err := tx.Exec(ctx, `DELETE FROM client WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// GetByAdvisorID retrieves all clients for an advisor (metadata only)
func (r *ClientRepository) GetByAdvisorID(ctx context.Context, advisorID int64) ([]models.ClientListItem, error) {
	query := `
		SELECT id, client_name, spouse_name, married, updated
		FROM client
		WHERE owner = $1
		ORDER BY updated DESC
	`
	rows, err := r.pool.Query(ctx, query, advisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []models.ClientListItem
	for rows.Next() {
		var c models.ClientListItem
		if err := rows.Scan(&c.ID, &c.ClientName, &c.SpouseName, &c.Married, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// BeginTx starts a new transaction
func (r *ClientRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}
