package services

import (
	"strings"
	"unicode"

	"github.com/epeers/estateplan/internal/models"
)

// ownedByAliases maps folded intake strings to canonical owners.
// Keys are lowercase with everything but letters removed.
var ownedByAliases = map[string]models.OwnedBy{
	"client":                  models.OwnedByClient,
	"spouse":                  models.OwnedBySpouse,
	"clientandspouse":         models.OwnedByClientAndSpouse,
	"clientspouse":            models.OwnedByClientAndSpouse,
	"joint":                   models.OwnedByClientAndSpouse,
	"jointwithspouse":         models.OwnedByClientAndSpouse,
	"both":                    models.OwnedByClientAndSpouse,
	"clientandother":          models.OwnedByClientAndOther,
	"clientother":             models.OwnedByClientAndOther,
	"clientspouseandother":    models.OwnedByClientSpouseAndOther,
	"clientandspouseandother": models.OwnedByClientSpouseAndOther,
	"clientspouseother":       models.OwnedByClientSpouseAndOther,
	"spouseandother":          models.OwnedBySpouseAndOther,
	"spouseother":             models.OwnedBySpouseAndOther,
	"trust":                   models.OwnedByTrust,
	"revocabletrust":          models.OwnedByTrust,
	"livingtrust":             models.OwnedByTrust,
	"llc":                     models.OwnedByLLC,
}

var ownershipFormAliases = map[string]models.OwnershipForm{
	"sole":                                models.OwnershipSole,
	"individual":                          models.OwnershipSole,
	"jtwros":                              models.OwnershipJTWROS,
	"jointtenancy":                        models.OwnershipJTWROS,
	"jointtenants":                        models.OwnershipJTWROS,
	"jointtenancywithrightofsurvivorship": models.OwnershipJTWROS,
	"jointtenantswithrightofsurvivorship": models.OwnershipJTWROS,
	"tic":                                 models.OwnershipTIC,
	"tenancyincommon":                     models.OwnershipTIC,
	"tenantsincommon":                     models.OwnershipTIC,
	"tbe":                                 models.OwnershipTBE,
	"tenancybytheentirety":                models.OwnershipTBE,
	"tenancybyentirety":                   models.OwnershipTBE,
	"tenantsbytheentirety":                models.OwnershipTBE,
	"trust":                               models.OwnershipTrust,
	"llc":                                 models.OwnershipLLC,
}

var realEstateModeAliases = map[string]models.RealEstateMode{
	"feesimple":          models.RealEstateFeeSimple,
	"deed":               models.RealEstateFeeSimple,
	"warrantydeed":       models.RealEstateFeeSimple,
	"lifeestate":         models.RealEstateLifeEstate,
	"lifeestatedeed":     models.RealEstateLifeEstate,
	"ladybird":           models.RealEstateLadyBird,
	"ladybirddeed":       models.RealEstateLadyBird,
	"enhancedlifeestate": models.RealEstateLadyBird,
	"landcontract":       models.RealEstateLandContract,
	"entityowned":        models.RealEstateEntityOwned,
	"entity":             models.RealEstateEntityOwned,
}

// foldKey lowercases s and drops everything that is not a letter, so that
// "Client & Spouse", "client_and_spouse" and "ClientAndSpouse" compare equal.
func foldKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ResolveOwnedBy maps an intake owner string to its canonical value.
// Unset or unrecognized owners resolve to ClientAndSpouse.
func ResolveOwnedBy(raw string) models.OwnedBy {
	if o, ok := ownedByAliases[foldKey(raw)]; ok {
		return o
	}
	return models.OwnedByClientAndSpouse
}

// ResolveOwnershipForm maps an intake ownership form to its canonical value.
// Unset or unrecognized forms resolve to TBE for spousal joint ownership and
// Sole for everything else.
func ResolveOwnershipForm(raw string, owner models.OwnedBy) models.OwnershipForm {
	if f, ok := ownershipFormAliases[foldKey(raw)]; ok {
		return f
	}
	if owner == models.OwnedByClientAndSpouse {
		return models.OwnershipTBE
	}
	return models.OwnershipSole
}

// ResolveRealEstateMode maps a deed type. Unrecognized deed types on real
// estate are treated as fee simple.
func ResolveRealEstateMode(raw string) models.RealEstateMode {
	if m, ok := realEstateModeAliases[foldKey(raw)]; ok {
		return m
	}
	return models.RealEstateFeeSimple
}

// ResolveBeneStatus accepts Yes/No in any case plus common synonyms.
// Anything else is treated as unanswered.
func ResolveBeneStatus(raw models.BeneStatus) models.BeneStatus {
	switch foldKey(string(raw)) {
	case "yes", "y", "true":
		return models.BeneYes
	case "no", "n", "false":
		return models.BeneNo
	}
	return models.BeneUnset
}

// ResolvePercentOwned turns an intake ownership share into a fraction.
// Absent, non-positive or non-numeric values mean full ownership. Values
// written with a % sign or above 1 are percentages. The result never
// exceeds 1.
func ResolvePercentOwned(raw models.FlexNumber) float64 {
	if !raw.Valid || raw.Value <= 0 {
		return 1.0
	}
	p := raw.Value
	if raw.Percent || p > 1 {
		p = p / 100
	}
	if p > 1 {
		return 1.0
	}
	return p
}

// resolveValue clamps negative or missing values to zero
func resolveValue(raw models.FlexNumber) float64 {
	if !raw.Valid || raw.Value < 0 {
		return 0
	}
	return raw.Value
}

func copyShares(in []models.BeneficiaryShare) []models.BeneficiaryShare {
	out := make([]models.BeneficiaryShare, 0, len(in))
	for _, s := range in {
		out = append(out, models.BeneficiaryShare{
			Name:       strings.TrimSpace(s.Name),
			Percentage: s.Percentage,
		})
	}
	return out
}

// NormalizeAsset translates one raw intake record into the canonical shape.
// It never fails: malformed fields fall through to deterministic defaults.
func NormalizeAsset(raw models.RawAsset) models.Asset {
	category := raw.Category()
	own := raw.Ownership()
	owner := ResolveOwnedBy(own.OwnedBy)

	asset := models.Asset{
		ID:                      raw.RecordID(),
		IDName:                  category.IDName(),
		Name:                    raw.DisplayName(),
		Category:                category,
		OwnedBy:                 owner,
		OwnershipForm:           ResolveOwnershipForm(own.OwnershipForm, owner),
		HasBene:                 ResolveBeneStatus(own.HasBene),
		PrimaryBeneficiaries:    copyShares(own.PrimaryBeneficiaries),
		ContingentBeneficiaries: copyShares(own.ContingentBeneficiaries),
		ApproximateValue:        resolveValue(own.ApproximateValue),
		PercentOwned:            ResolvePercentOwned(own.PercentOwned),
	}

	if re, ok := raw.(models.RawRealEstate); ok {
		asset.RealEstateMode = ResolveRealEstateMode(re.DeedType)
	}

	return asset
}

// NormalizeAssets normalizes a full intake document into grouped and flat
// canonical assets. Category slices are never nil.
func NormalizeAssets(raw models.RawAssets) models.NormalizedAssets {
	out := models.NormalizedAssets{
		RealEstate:    make([]models.Asset, 0, len(raw.RealEstate)),
		Bank:          make([]models.Asset, 0, len(raw.Bank)),
		NQ:            make([]models.Asset, 0, len(raw.NQ)),
		Retirement:    make([]models.Asset, 0, len(raw.Retirement)),
		LifeInsurance: make([]models.Asset, 0, len(raw.LifeInsurance)),
		Business:      make([]models.Asset, 0, len(raw.Business)),
		Digital:       make([]models.Asset, 0, len(raw.Digital)),
		Other:         make([]models.Asset, 0, len(raw.Other)),
		All:           make([]models.Asset, 0, raw.Len()),
	}

	for _, rec := range raw.Records() {
		a := NormalizeAsset(rec)
		switch a.Category {
		case models.CategoryRealEstate:
			out.RealEstate = append(out.RealEstate, a)
		case models.CategoryBank:
			out.Bank = append(out.Bank, a)
		case models.CategoryNQ:
			out.NQ = append(out.NQ, a)
		case models.CategoryRetirement:
			out.Retirement = append(out.Retirement, a)
		case models.CategoryLifeInsurance:
			out.LifeInsurance = append(out.LifeInsurance, a)
		case models.CategoryBusiness:
			out.Business = append(out.Business, a)
		case models.CategoryDigital:
			out.Digital = append(out.Digital, a)
		default:
			out.Other = append(out.Other, a)
		}
		out.All = append(out.All, a)
	}

	return out
}
