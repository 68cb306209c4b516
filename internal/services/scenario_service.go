package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/estateplan/internal/cache"
	"github.com/epeers/estateplan/internal/models"
)

// ScenarioService runs scenarios for stored clients and for ad hoc input
type ScenarioService struct {
	clientSvc *ClientService
	cache     *cache.MemoryCache
}

// NewScenarioService creates a new ScenarioService
func NewScenarioService(clientSvc *ClientService, memCache *cache.MemoryCache) *ScenarioService {
	return &ScenarioService{
		clientSvc: clientSvc,
		cache:     memCache,
	}
}

// spouseNameFor returns the name shown for the spouse; single clients have none
func spouseNameFor(c *models.Client) string {
	if !c.Married {
		return ""
	}
	return c.SpouseName
}

// forwardDiagnostics copies a scenario's diagnostics into the request's warnings
func forwardDiagnostics(ctx context.Context, sc *models.ScenarioContainer) {
	for _, d := range sc.Diagnostics {
		AddWarning(ctx, d)
	}
}

// GetClientScenario returns the scenario for a stored client. The second
// return reports whether it came from the cache.
func (s *ScenarioService) GetClientScenario(ctx context.Context, clientID int64, kind models.ScenarioKind) (*models.ScenarioContainer, bool, error) {
	defer TrackTime("GetClientScenario", time.Now())

	in, err := s.clientSvc.LoadInputs(ctx, clientID)
	if err != nil {
		return nil, false, err
	}
	if in.Assets == nil {
		return nil, false, ErrNoAssetData
	}

	version := in.Client.UpdatedAt
	if sc, ok := s.cache.GetScenario(clientID, kind, version); ok {
		forwardDiagnostics(ctx, sc)
		return sc, true, nil
	}

	assets := NormalizeAssets(*in.Assets).All
	sc, err := GenerateScenario(kind, assets, in.Client.ClientName, spouseNameFor(in.Client))
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate scenario: %w", err)
	}

	s.cache.SetScenario(clientID, kind, version, sc)
	forwardDiagnostics(ctx, sc)
	return sc, false, nil
}

// PreviewScenario runs a scenario over the request's assets without touching storage
func (s *ScenarioService) PreviewScenario(ctx context.Context, req *models.ScenarioPreviewRequest) (*models.ScenarioContainer, error) {
	defer TrackTime("PreviewScenario", time.Now())

	if req.Assets == nil {
		return nil, ErrNoAssetData
	}
	sc, err := GenerateScenario(req.Kind, NormalizeAssets(*req.Assets).All, req.ClientName, req.SpouseName)
	if err != nil {
		return nil, err
	}
	forwardDiagnostics(ctx, sc)
	return sc, nil
}
