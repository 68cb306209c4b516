package services

import (
	"fmt"
	"math"

	"github.com/epeers/estateplan/internal/models"
)

// percentTolerance is how far a share list may drift from 100 and still count as complete
const percentTolerance = 0.01

// planChecker accumulates findings for one validation run
type planChecker struct {
	assets map[string]models.Asset
	pool   map[string]models.FiduciaryPoolMember
	result models.EstatePlanValidation
}

func (c *planChecker) conflict(k models.Conflict) {
	c.result.Conflicts = append(c.result.Conflicts, k)
}

func (c *planChecker) warn(t models.PlanWarningType, doc, format string, args ...any) {
	c.result.Warnings = append(c.result.Warnings, models.PlanWarning{
		Type:     t,
		Document: doc,
		Message:  fmt.Sprintf(format, args...),
	})
}

// ValidateEstatePlan cross-checks the wills against the assets' beneficiary
// designations. It only reads its inputs and returns a fresh result on every
// call. A spouse's will is always checked when present; its absence is only
// reported for a married couple.
func ValidateEstatePlan(plan models.EstatePlan, assets []models.Asset) models.EstatePlanValidation {
	c := &planChecker{
		assets: make(map[string]models.Asset, len(assets)),
		pool:   PoolIndex(plan.FiduciaryPool),
		result: models.EstatePlanValidation{
			Conflicts: []models.Conflict{},
			Warnings:  []models.PlanWarning{},
		},
	}
	for _, a := range assets {
		if _, ok := c.assets[a.Key()]; !ok {
			c.assets[a.Key()] = a
		}
	}

	c.checkWill(plan.ClientWill, models.DocumentClientWill)
	if plan.Married || plan.SpouseWill != nil {
		c.checkWill(plan.SpouseWill, models.DocumentSpouseWill)
	}

	c.result.HasConflicts = len(c.result.Conflicts) > 0
	return c.result
}

func (c *planChecker) checkWill(w *models.Will, doc string) {
	if w == nil {
		c.warn(models.PlanWarnMissingExecutor, doc, "No will has been created for %s", doc)
		return
	}

	c.checkExecutors(w, doc)
	c.checkGifts(w.SpecificDevises, doc, true)
	c.checkGifts(w.SpecificBequests, doc, false)
	c.checkResiduary(w, doc)

	for _, b := range w.GeneralBequests {
		c.checkPoolRef(b.Beneficiary.PoolID, b.Beneficiary.Name, doc)
	}
}

func (c *planChecker) checkExecutors(w *models.Will, doc string) {
	hasPrimary := false
	for _, e := range w.Executors {
		if e.Role == models.ExecutorPrimary {
			hasPrimary = true
		}
		c.checkPoolRef(e.PoolID, e.Name, doc)
	}
	if !hasPrimary {
		c.warn(models.PlanWarnMissingExecutor, doc, "No primary executor is named in %s", doc)
	}
}

// checkGifts flags gifts of assets that pass by beneficiary designation and,
// for devises, the same asset being devised more than once
func (c *planChecker) checkGifts(gifts []models.SpecificGift, doc string, devises bool) {
	seen := make(map[string]struct{}, len(gifts))
	for _, g := range gifts {
		key := g.Key()
		name := g.AssetName

		if devises {
			if _, dup := seen[key]; dup {
				c.conflict(models.Conflict{
					Type:        models.ConflictDuplicateDevise,
					Severity:    models.SeverityError,
					Document:    doc,
					AssetID:     g.AssetID,
					AssetIDName: g.AssetIDName,
					AssetName:   name,
					Message:     fmt.Sprintf("%q is devised more than once in %s", name, doc),
				})
			}
			seen[key] = struct{}{}
		}

		for _, b := range g.Beneficiaries {
			c.checkPoolRef(b.PoolID, b.Name, doc)
		}

		asset, ok := c.assets[key]
		if !ok {
			c.warn(models.PlanWarnUnknownAssetReference, doc, "%s gives %q (%s) which is not in the asset list", doc, name, key)
			continue
		}
		if name == "" {
			name = asset.Name
		}
		if asset.HasBene == models.BeneYes {
			c.conflict(models.Conflict{
				Type:        models.ConflictBeneficiaryDevise,
				Severity:    models.SeverityWarning,
				Document:    doc,
				AssetID:     asset.ID,
				AssetIDName: asset.IDName,
				AssetName:   name,
				Message:     fmt.Sprintf("%q has a beneficiary designation, which controls over the gift in %s", name, doc),
			})
		}
	}
}

func (c *planChecker) checkResiduary(w *models.Will, doc string) {
	if len(w.ResiduaryPrimary) == 0 && len(w.ResiduaryContingent) == 0 {
		c.warn(models.PlanWarnMissingResiduaryBeneficiary, doc, "No residuary beneficiaries are named in %s", doc)
		return
	}
	c.checkShares(w.ResiduaryPrimary, "primary", doc)
	c.checkShares(w.ResiduaryContingent, "contingent", doc)
}

func (c *planChecker) checkShares(shares []models.BeneficiaryDesignation, tier, doc string) {
	if len(shares) == 0 {
		return
	}
	var total float64
	for _, s := range shares {
		total += s.Percentage
		c.checkPoolRef(s.PoolID, s.Name, doc)
	}
	if math.Abs(total-100) > percentTolerance {
		c.warn(models.PlanWarnPercentageNotComplete, doc, "Residuary %s beneficiaries in %s total %.2f%%, not 100%%", tier, doc, total)
	}
}

// checkPoolRef warns about a designation naming someone outside the
// fiduciary pool. Blank ids and an empty pool are not checked.
func (c *planChecker) checkPoolRef(poolID, name, doc string) {
	if poolID == "" || len(c.pool) == 0 {
		return
	}
	if _, ok := c.pool[poolID]; !ok {
		c.warn(models.PlanWarnUnknownFiduciary, doc, "%q (%s) in %s is not in the fiduciary pool", name, poolID, doc)
	}
}
