package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/epeers/estateplan/internal/cache"
	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/repository"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrUnauthorized   = errors.New("not authorized to modify this client")
	ErrInvalidClient  = errors.New("invalid client")
)

// ClientService handles client records and their stored intake documents
type ClientService struct {
	clientRepo *repository.ClientRepository
	assetRepo  *repository.AssetRepository
	heirRepo   *repository.HeirRepository
	planRepo   *repository.EstatePlanRepository
	cache      *cache.MemoryCache
}

// NewClientService creates a new ClientService
func NewClientService(
	clientRepo *repository.ClientRepository,
	assetRepo *repository.AssetRepository,
	heirRepo *repository.HeirRepository,
	planRepo *repository.EstatePlanRepository,
	memCache *cache.MemoryCache,
) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		assetRepo:  assetRepo,
		heirRepo:   heirRepo,
		planRepo:   planRepo,
		cache:      memCache,
	}
}

func mapClientErr(err error) error {
	if errors.Is(err, repository.ErrClientNotFound) {
		return ErrClientNotFound
	}
	return err
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, fmt.Errorf("%w: client_name is required", ErrInvalidClient)
	}

	tx, err := s.clientRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	client := &models.Client{
		AdvisorID:  req.AdvisorID,
		ClientName: name,
		SpouseName: strings.TrimSpace(req.SpouseName),
		Married:    req.Married,
	}
	if err := s.clientRepo.Create(ctx, tx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return client, nil
}

// GetClient retrieves a client
func (s *ClientService) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapClientErr(err)
	}
	return client, nil
}

// getOwned retrieves a client and checks that userID is its advisor
func (s *ClientService) getOwned(ctx context.Context, id, userID int64) (*models.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.AdvisorID != userID {
		return nil, ErrUnauthorized
	}
	return client, nil
}

// UpdateClient updates a client's names and marital status
func (s *ClientService) UpdateClient(ctx context.Context, id, userID int64, req *models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return nil, fmt.Errorf("%w: client_name cannot be empty", ErrInvalidClient)
		}
		client.ClientName = name
	}
	if req.SpouseName != nil {
		client.SpouseName = strings.TrimSpace(*req.SpouseName)
	}
	if req.Married != nil {
		client.Married = *req.Married
	}

	tx, err := s.clientRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.clientRepo.Update(ctx, tx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", mapClientErr(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.InvalidateClient(id)
	return client, nil
}

// DeleteClient deletes a client and every stored document
func (s *ClientService) DeleteClient(ctx context.Context, id, userID int64) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	tx, err := s.clientRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.clientRepo.Delete(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", mapClientErr(err))
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.InvalidateClient(id)
	return nil
}

// GetAdvisorClients retrieves all clients for an advisor (metadata only)
func (s *ClientService) GetAdvisorClients(ctx context.Context, advisorID int64) ([]models.ClientListItem, error) {
	clients, err := s.clientRepo.GetByAdvisorID(ctx, advisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get advisor clients: %w", err)
	}
	return clients, nil
}

// writeDocument runs write in a transaction that also bumps the client's
// version, then drops cached results for the client
func (s *ClientService) writeDocument(ctx context.Context, id, userID int64, write func(tx pgx.Tx) error) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	tx, err := s.clientRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := write(tx); err != nil {
		return err
	}
	if _, err := s.clientRepo.Touch(ctx, tx, id); err != nil {
		return mapClientErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.InvalidateClient(id)
	return nil
}

// SaveAssets replaces the client's raw asset document and returns it normalized
func (s *ClientService) SaveAssets(ctx context.Context, id, userID int64, raw models.RawAssets) (models.NormalizedAssets, error) {
	defer TrackTime("SaveAssets", time.Now())

	err := s.writeDocument(ctx, id, userID, func(tx pgx.Tx) error {
		return s.assetRepo.Save(ctx, tx, id, raw)
	})
	if err != nil {
		return models.NormalizedAssets{}, err
	}
	return NormalizeAssets(raw), nil
}

// GetAssets returns the client's assets normalized. ErrNoAssetData means no
// asset document has been saved yet.
func (s *ClientService) GetAssets(ctx context.Context, id int64) (models.NormalizedAssets, error) {
	if _, err := s.GetClient(ctx, id); err != nil {
		return models.NormalizedAssets{}, err
	}
	raw, err := s.assetRepo.Get(ctx, id)
	if err != nil {
		return models.NormalizedAssets{}, fmt.Errorf("failed to get assets: %w", err)
	}
	if raw == nil {
		return models.NormalizedAssets{}, ErrNoAssetData
	}
	return NormalizeAssets(*raw), nil
}

// SaveHeirs replaces the client's heir lists and returns the resulting pool
func (s *ClientService) SaveHeirs(ctx context.Context, id, userID int64, heirs models.HeirLists) ([]models.FiduciaryPoolMember, error) {
	err := s.writeDocument(ctx, id, userID, func(tx pgx.Tx) error {
		return s.heirRepo.Save(ctx, tx, id, heirs)
	})
	if err != nil {
		return nil, err
	}
	return ResolveHeirs(heirs.ClientHeirs, heirs.SpouseHeirs, heirs.ManualPool), nil
}

// GetFiduciaryPool resolves the client's stored heir lists into the pool
func (s *ClientService) GetFiduciaryPool(ctx context.Context, id int64) ([]models.FiduciaryPoolMember, error) {
	if _, err := s.GetClient(ctx, id); err != nil {
		return nil, err
	}
	heirs, err := s.heirRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get heirs: %w", err)
	}
	return ResolveHeirs(heirs.ClientHeirs, heirs.SpouseHeirs, heirs.ManualPool), nil
}

// SavePlan replaces the client's estate plan
func (s *ClientService) SavePlan(ctx context.Context, id, userID int64, plan models.EstatePlan) error {
	return s.writeDocument(ctx, id, userID, func(tx pgx.Tx) error {
		return s.planRepo.Save(ctx, tx, id, plan)
	})
}

// LoadInputs fetches the client record and all stored documents concurrently
func (s *ClientService) LoadInputs(ctx context.Context, id int64) (*models.ClientInputs, error) {
	defer TrackTime("LoadInputs", time.Now())

	var in models.ClientInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		client, err := s.clientRepo.GetByID(gctx, id)
		if err != nil {
			return mapClientErr(err)
		}
		in.Client = client
		return nil
	})
	g.Go(func() error {
		assets, err := s.assetRepo.Get(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get assets: %w", err)
		}
		in.Assets = assets
		return nil
	})
	g.Go(func() error {
		heirs, err := s.heirRepo.Get(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get heirs: %w", err)
		}
		in.Heirs = heirs
		return nil
	})
	g.Go(func() error {
		plan, err := s.planRepo.Get(gctx, id)
		if err != nil {
			return fmt.Errorf("failed to get estate plan: %w", err)
		}
		in.Plan = plan
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}
