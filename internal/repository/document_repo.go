package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/epeers/estateplan/internal/models"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentKind names a JSONB document stored per client
type documentKind string

const (
	kindAssets     documentKind = "assets"
	kindHeirs      documentKind = "heirs"
	kindEstatePlan documentKind = "estate_plan"
)

// documentStore reads and writes one kind of client document
type documentStore struct {
	pool *pgxpool.Pool
	kind documentKind
}

func (s documentStore) save(ctx context.Context, tx pgx.Tx, clientID int64, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.kind, err)
	}
	query := `
		INSERT INTO client_document (client_id, kind, body, updated)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (client_id, kind) DO UPDATE
		SET body = EXCLUDED.body, updated = NOW()
	`
	if _, err := tx.Exec(ctx, query, clientID, string(s.kind), body); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.kind, err)
	}
	return nil
}

// load decodes the stored document into v and reports whether one existed
func (s documentStore) load(ctx context.Context, clientID int64, v any) (bool, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM client_document WHERE client_id = $1 AND kind = $2`,
		clientID, string(s.kind),
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", s.kind, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", s.kind, err)
	}
	return true, nil
}

// AssetRepository stores each client's raw intake asset document
type AssetRepository struct {
	docs documentStore
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{docs: documentStore{pool: pool, kind: kindAssets}}
}

// Save replaces the client's asset document
func (r *AssetRepository) Save(ctx context.Context, tx pgx.Tx, clientID int64, assets models.RawAssets) error {
	return r.docs.save(ctx, tx, clientID, assets)
}

// Get returns the client's asset document, or nil if none has been saved
func (r *AssetRepository) Get(ctx context.Context, clientID int64) (*models.RawAssets, error) {
	var assets models.RawAssets
	found, err := r.docs.load(ctx, clientID, &assets)
	if err != nil || !found {
		return nil, err
	}
	return &assets, nil
}

// HeirRepository stores each client's heir lists and manual pool entries
type HeirRepository struct {
	docs documentStore
}

// NewHeirRepository creates a new HeirRepository
func NewHeirRepository(pool *pgxpool.Pool) *HeirRepository {
	return &HeirRepository{docs: documentStore{pool: pool, kind: kindHeirs}}
}

// Save replaces the client's heir lists
func (r *HeirRepository) Save(ctx context.Context, tx pgx.Tx, clientID int64, heirs models.HeirLists) error {
	return r.docs.save(ctx, tx, clientID, heirs)
}

// Get returns the client's heir lists; empty lists if none have been saved
func (r *HeirRepository) Get(ctx context.Context, clientID int64) (models.HeirLists, error) {
	var heirs models.HeirLists
	if _, err := r.docs.load(ctx, clientID, &heirs); err != nil {
		return models.HeirLists{}, err
	}
	return heirs, nil
}

// EstatePlanRepository stores each client's will and trust documents
type EstatePlanRepository struct {
	docs documentStore
}

// NewEstatePlanRepository creates a new EstatePlanRepository
func NewEstatePlanRepository(pool *pgxpool.Pool) *EstatePlanRepository {
	return &EstatePlanRepository{docs: documentStore{pool: pool, kind: kindEstatePlan}}
}

// Save replaces the client's estate plan
func (r *EstatePlanRepository) Save(ctx context.Context, tx pgx.Tx, clientID int64, plan models.EstatePlan) error {
	return r.docs.save(ctx, tx, clientID, plan)
}

// Get returns the client's estate plan, or nil if none has been saved
func (r *EstatePlanRepository) Get(ctx context.Context, clientID int64) (*models.EstatePlan, error) {
	var plan models.EstatePlan
	found, err := r.docs.load(ctx, clientID, &plan)
	if err != nil || !found {
		return nil, err
	}
	return &plan, nil
}
