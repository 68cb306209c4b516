package services

import (
	"encoding/json"
	"testing"

	"github.com/epeers/estateplan/internal/models"
)

func TestResolveOwnedBy(t *testing.T) {
	tests := []struct {
		raw  string
		want models.OwnedBy
	}{
		{"Client", models.OwnedByClient},
		{"spouse", models.OwnedBySpouse},
		{"Client & Spouse", models.OwnedByClientAndSpouse},
		{"client_and_spouse", models.OwnedByClientAndSpouse},
		{"Joint", models.OwnedByClientAndSpouse},
		{"Client and Other", models.OwnedByClientAndOther},
		{"ClientSpouseAndOther", models.OwnedByClientSpouseAndOther},
		{"spouse-and-other", models.OwnedBySpouseAndOther},
		{"Revocable Trust", models.OwnedByTrust},
		{"LLC", models.OwnedByLLC},
		{"", models.OwnedByClientAndSpouse},
		{"my cousin", models.OwnedByClientAndSpouse},
	}
	for _, tt := range tests {
		if got := ResolveOwnedBy(tt.raw); got != tt.want {
			t.Errorf("ResolveOwnedBy(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestResolveOwnershipForm(t *testing.T) {
	tests := []struct {
		raw   string
		owner models.OwnedBy
		want  models.OwnershipForm
	}{
		{"JTWROS", models.OwnedByClientAndSpouse, models.OwnershipJTWROS},
		{"Joint Tenants with Right of Survivorship", models.OwnedByClientAndOther, models.OwnershipJTWROS},
		{"Tenancy in Common", models.OwnedByClient, models.OwnershipTIC},
		{"tenancy by the entirety", models.OwnedByClientAndSpouse, models.OwnershipTBE},
		{"individual", models.OwnedByClient, models.OwnershipSole},
		{"", models.OwnedByClientAndSpouse, models.OwnershipTBE},
		{"", models.OwnedByClient, models.OwnershipSole},
		{"community property", models.OwnedByClientAndSpouse, models.OwnershipTBE},
		{"community property", models.OwnedBySpouseAndOther, models.OwnershipSole},
	}
	for _, tt := range tests {
		if got := ResolveOwnershipForm(tt.raw, tt.owner); got != tt.want {
			t.Errorf("ResolveOwnershipForm(%q, %s) = %s, want %s", tt.raw, tt.owner, got, tt.want)
		}
	}
}

func TestResolveRealEstateMode(t *testing.T) {
	tests := []struct {
		raw  string
		want models.RealEstateMode
	}{
		{"Lady Bird Deed", models.RealEstateLadyBird},
		{"enhanced life estate", models.RealEstateLadyBird},
		{"Life Estate", models.RealEstateLifeEstate},
		{"land contract", models.RealEstateLandContract},
		{"Warranty Deed", models.RealEstateFeeSimple},
		{"", models.RealEstateFeeSimple},
		{"quitclaim?", models.RealEstateFeeSimple},
	}
	for _, tt := range tests {
		if got := ResolveRealEstateMode(tt.raw); got != tt.want {
			t.Errorf("ResolveRealEstateMode(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestResolveBeneStatus(t *testing.T) {
	tests := []struct {
		raw  models.BeneStatus
		want models.BeneStatus
	}{
		{"Yes", models.BeneYes},
		{"yes", models.BeneYes},
		{"Y", models.BeneYes},
		{"No", models.BeneNo},
		{"false", models.BeneNo},
		{"", models.BeneUnset},
		{"maybe", models.BeneUnset},
	}
	for _, tt := range tests {
		if got := ResolveBeneStatus(tt.raw); got != tt.want {
			t.Errorf("ResolveBeneStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolvePercentOwned(t *testing.T) {
	tests := []struct {
		name string
		raw  models.FlexNumber
		want float64
	}{
		{"absent", models.FlexNumber{}, 1},
		{"zero", models.Number(0), 1},
		{"negative", models.Number(-5), 1},
		{"fraction", models.Number(0.4), 0.4},
		{"one", models.Number(1), 1},
		{"percentage", models.Number(40), 0.4},
		{"hundred", models.Number(100), 1},
		{"over a hundred", models.Number(250), 1},
		{"half a percent", models.ParseFlexNumber("0.5%"), 0.005},
		{"one percent", models.ParseFlexNumber("1%"), 0.01},
		{"forty percent", models.ParseFlexNumber("40%"), 0.4},
		{"plain half", models.ParseFlexNumber("0.5"), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePercentOwned(tt.raw); !approxEqual(got, tt.want) {
				t.Errorf("ResolvePercentOwned(%+v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeAsset_Defaults(t *testing.T) {
	a := NormalizeAsset(models.RawOtherAsset{ID: "7"})

	if a.Key() != "otherAsset|7" {
		t.Errorf("expected key otherAsset|7, got %s", a.Key())
	}
	if a.Name != "Other Asset" {
		t.Errorf("expected fallback name, got %q", a.Name)
	}
	if a.OwnedBy != models.OwnedByClientAndSpouse || a.OwnershipForm != models.OwnershipTBE {
		t.Errorf("expected ClientAndSpouse/TBE defaults, got %s/%s", a.OwnedBy, a.OwnershipForm)
	}
	if a.HasBene != models.BeneUnset {
		t.Errorf("expected unanswered beneficiary status, got %q", a.HasBene)
	}
	if a.ApproximateValue != 0 || a.PercentOwned != 1 {
		t.Errorf("expected value 0 and percentOwned 1, got %v and %v", a.ApproximateValue, a.PercentOwned)
	}
	if a.PrimaryBeneficiaries == nil || a.ContingentBeneficiaries == nil {
		t.Errorf("expected non-nil beneficiary slices")
	}
	if a.RealEstateMode != "" {
		t.Errorf("expected no deed mode on a non-real-estate asset, got %s", a.RealEstateMode)
	}
}

func TestNormalizeAsset_CategorySpecificFields(t *testing.T) {
	home := NormalizeAsset(models.RawRealEstate{
		ID:           "h1",
		Address:      "12 Elm St",
		PropertyType: "Primary Residence",
		DeedType:     "Lady Bird Deed",
		RawOwnership: models.RawOwnership{
			OwnedBy:          "Client",
			ApproximateValue: models.Number(320000),
		},
	})
	if home.RealEstateMode != models.RealEstateLadyBird {
		t.Errorf("expected LadyBird, got %s", home.RealEstateMode)
	}
	if home.Name != "12 Elm St - Primary Residence" {
		t.Errorf("unexpected name %q", home.Name)
	}

	ira := NormalizeAsset(models.RawRetirementAccount{
		ID:    "r1",
		Owner: "Spouse",
	})
	if ira.OwnedBy != models.OwnedBySpouse {
		t.Errorf("expected the retirement owner field to set ownedBy, got %s", ira.OwnedBy)
	}

	policy := NormalizeAsset(models.RawLifeInsurance{
		ID:           "l1",
		DeathBenefit: models.Number(500000),
	})
	if policy.ApproximateValue != 500000 {
		t.Errorf("expected the death benefit as value, got %v", policy.ApproximateValue)
	}

	stake := NormalizeAsset(models.RawBusinessInterest{
		ID:                  "b1",
		OwnershipPercentage: models.Number(25),
		RawOwnership: models.RawOwnership{
			OwnedBy:       "Client",
			OwnershipForm: "TIC",
		},
	})
	if !approxEqual(stake.PercentOwned, 0.25) {
		t.Errorf("expected percentOwned 0.25, got %v", stake.PercentOwned)
	}
}

func TestNormalizeAsset_NegativeValueClamped(t *testing.T) {
	a := NormalizeAsset(models.RawBankAccount{
		ID:           "1",
		RawOwnership: models.RawOwnership{ApproximateValue: models.Number(-10)},
	})
	if a.ApproximateValue != 0 {
		t.Errorf("expected 0, got %v", a.ApproximateValue)
	}
}

func TestNormalizeAssets_FromIntakeJSON(t *testing.T) {
	doc := `{
		"real_estate": [{"id": "1", "address": "12 Elm St", "owned_by": "Client and Spouse",
			"ownership_form": "Tenancy by the Entirety", "approximate_value": "$250,000", "has_bene": null}],
		"bank": [{"id": "1", "bank_name": "First Federal", "owned_by": "client", "has_bene": true,
			"primary_beneficiaries": [{"name": " Carol ", "percentage": 100}], "approximate_value": 1200.5}],
		"business": [{"id": "9", "business_name": "Acme", "owned_by": "Client", "ownership_form": "TIC",
			"percent_owned": "40%", "approximate_value": "not sure"}]
	}`
	var raw models.RawAssets
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("failed to decode intake document: %v", err)
	}

	n := NormalizeAssets(raw)
	if len(n.All) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(n.All))
	}
	if len(n.RealEstate) != 1 || len(n.Bank) != 1 || len(n.Business) != 1 {
		t.Fatalf("unexpected grouping: %d/%d/%d", len(n.RealEstate), len(n.Bank), len(n.Business))
	}
	if n.NQ == nil || n.Other == nil || n.Digital == nil {
		t.Errorf("expected empty categories to be non-nil")
	}

	home := n.All[0]
	if home.OwnedBy != models.OwnedByClientAndSpouse || home.OwnershipForm != models.OwnershipTBE {
		t.Errorf("unexpected home ownership %s/%s", home.OwnedBy, home.OwnershipForm)
	}
	if home.ApproximateValue != 250000 {
		t.Errorf("expected 250000, got %v", home.ApproximateValue)
	}
	if home.RealEstateMode != models.RealEstateFeeSimple {
		t.Errorf("expected FeeSimple, got %s", home.RealEstateMode)
	}

	bank := n.All[1]
	if bank.HasBene != models.BeneYes {
		t.Errorf("expected has_bene Yes from a boolean, got %q", bank.HasBene)
	}
	if bank.PrimaryBeneficiaries[0].Name != "Carol" {
		t.Errorf("expected trimmed beneficiary name, got %q", bank.PrimaryBeneficiaries[0].Name)
	}
	if bank.Key() == home.Key() {
		t.Errorf("assets with the same id in different categories must have different keys")
	}

	biz := n.All[2]
	if !approxEqual(biz.PercentOwned, 0.4) {
		t.Errorf("expected percentOwned 0.4, got %v", biz.PercentOwned)
	}
	if biz.ApproximateValue != 0 {
		t.Errorf("expected unparseable value to normalize to 0, got %v", biz.ApproximateValue)
	}
}

func TestNormalizeAssets_Deterministic(t *testing.T) {
	raw := models.RawAssets{
		Bank:  []models.RawBankAccount{{ID: "1", BankName: "A"}},
		Other: []models.RawOtherAsset{{ID: "2", Description: "Boat"}},
	}
	first := NormalizeAssets(raw)
	second := NormalizeAssets(raw)
	if len(first.All) != len(second.All) {
		t.Fatalf("asset counts differ between runs")
	}
	for i := range first.All {
		if first.All[i].Key() != second.All[i].Key() || first.All[i].Name != second.All[i].Name {
			t.Errorf("asset %d differs between runs", i)
		}
	}
}
