package services

import (
	"context"
	"fmt"
	"time"

	"github.com/epeers/estateplan/internal/cache"
	"github.com/epeers/estateplan/internal/models"
)

// ValidationService validates estate plans for stored clients and for ad hoc input
type ValidationService struct {
	clientSvc *ClientService
	cache     *cache.MemoryCache
}

// NewValidationService creates a new ValidationService
func NewValidationService(clientSvc *ClientService, memCache *cache.MemoryCache) *ValidationService {
	return &ValidationService{
		clientSvc: clientSvc,
		cache:     memCache,
	}
}

// planWithPool returns a copy of plan whose fiduciary pool is resolved from
// the heir lists when the plan carries none
func planWithPool(plan models.EstatePlan, heirs models.HeirLists) models.EstatePlan {
	if len(plan.FiduciaryPool) == 0 {
		plan.FiduciaryPool = ResolveHeirs(heirs.ClientHeirs, heirs.SpouseHeirs, heirs.ManualPool)
	}
	return plan
}

// normalizedOrEmpty normalizes stored assets. A missing document validates as
// an empty estate and is reported through the request's warnings.
func normalizedOrEmpty(ctx context.Context, raw *models.RawAssets) []models.Asset {
	if raw == nil {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnInputsUnavailable,
			Message: "no assets have been saved; asset references were checked against an empty list",
		})
		return []models.Asset{}
	}
	return NormalizeAssets(*raw).All
}

func reportConflicts(ctx context.Context, v models.EstatePlanValidation) {
	if v.HasConflicts {
		AddWarning(ctx, models.Warning{
			Code:    models.WarnPlanHasConflicts,
			Message: fmt.Sprintf("estate plan has %d conflict(s)", len(v.Conflicts)),
		})
	}
}

// ValidateClient validates a stored client's plan. The marital status on the
// client record decides whether a spouse will is expected. The second return
// reports whether the result came from the cache.
func (s *ValidationService) ValidateClient(ctx context.Context, clientID int64) (models.EstatePlanValidation, bool, error) {
	defer TrackTime("ValidateClient", time.Now())

	in, err := s.clientSvc.LoadInputs(ctx, clientID)
	if err != nil {
		return models.EstatePlanValidation{}, false, err
	}

	version := in.Client.UpdatedAt
	if v, ok := s.cache.GetValidation(clientID, version); ok {
		if in.Assets == nil {
			normalizedOrEmpty(ctx, nil)
		}
		reportConflicts(ctx, v)
		return v, true, nil
	}

	var plan models.EstatePlan
	if in.Plan != nil {
		plan = *in.Plan
	}
	plan.Married = in.Client.Married
	plan = planWithPool(plan, in.Heirs)

	v := ValidateEstatePlan(plan, normalizedOrEmpty(ctx, in.Assets))
	s.cache.SetValidation(clientID, version, v)
	reportConflicts(ctx, v)
	return v, false, nil
}

// PreviewValidation validates the request's plan without touching storage
func (s *ValidationService) PreviewValidation(ctx context.Context, req *models.ValidationPreviewRequest) models.EstatePlanValidation {
	defer TrackTime("PreviewValidation", time.Now())

	v := ValidateEstatePlan(planWithPool(req.Plan, req.Heirs), normalizedOrEmpty(ctx, req.Assets))
	reportConflicts(ctx, v)
	return v
}
