package models

import (
	"encoding/json"
)

// Category identifies which intake form an asset came from
type Category string

const (
	CategoryRealEstate    Category = "RealEstate"
	CategoryBank          Category = "Bank"
	CategoryNQ            Category = "NQ"
	CategoryRetirement    Category = "Retirement"
	CategoryLifeInsurance Category = "LifeInsurance"
	CategoryBusiness      Category = "Business"
	CategoryDigital       Category = "Digital"
	CategoryOther         Category = "Other"
)

// IDName returns the key namespace used for assets of this category.
// Asset ids are only unique within a namespace.
func (c Category) IDName() string {
	switch c {
	case CategoryRealEstate:
		return "realEstate"
	case CategoryBank:
		return "bankAccount"
	case CategoryNQ:
		return "nqAccount"
	case CategoryRetirement:
		return "retirementAccount"
	case CategoryLifeInsurance:
		return "lifeInsurance"
	case CategoryBusiness:
		return "businessInterest"
	case CategoryDigital:
		return "digitalAsset"
	default:
		return "otherAsset"
	}
}

// OwnedBy records who holds title to an asset
type OwnedBy string

const (
	OwnedByClient               OwnedBy = "Client"
	OwnedBySpouse               OwnedBy = "Spouse"
	OwnedByClientAndSpouse      OwnedBy = "ClientAndSpouse"
	OwnedByClientAndOther       OwnedBy = "ClientAndOther"
	OwnedByClientSpouseAndOther OwnedBy = "ClientSpouseAndOther"
	OwnedBySpouseAndOther       OwnedBy = "SpouseAndOther"
	OwnedByTrust                OwnedBy = "Trust"
	OwnedByLLC                  OwnedBy = "LLC"
)

// IsEntity reports whether title is held by an entity rather than people.
func (o OwnedBy) IsEntity() bool {
	return o == OwnedByTrust || o == OwnedByLLC
}

// OwnershipForm is the form of title for non-entity ownership
type OwnershipForm string

const (
	OwnershipSole   OwnershipForm = "Sole"
	OwnershipJTWROS OwnershipForm = "JTWROS"
	OwnershipTIC    OwnershipForm = "TIC"
	OwnershipTBE    OwnershipForm = "TBE"
	OwnershipTrust  OwnershipForm = "Trust"
	OwnershipLLC    OwnershipForm = "LLC"
)

// RealEstateMode is the deed type of a real estate asset
type RealEstateMode string

const (
	RealEstateFeeSimple    RealEstateMode = "FeeSimple"
	RealEstateLifeEstate   RealEstateMode = "LifeEstate"
	RealEstateLadyBird     RealEstateMode = "LadyBird"
	RealEstateLandContract RealEstateMode = "LandContract"
	RealEstateEntityOwned  RealEstateMode = "EntityOwned"
)

// BeneStatus records whether a non-probate beneficiary designation exists.
// The zero value means the question was never answered and encodes as null.
type BeneStatus string

const (
	BeneUnset BeneStatus = ""
	BeneYes   BeneStatus = "Yes"
	BeneNo    BeneStatus = "No"
)

func (b BeneStatus) MarshalJSON() ([]byte, error) {
	if b == BeneUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON accepts strings, booleans and 1/0 from older intake forms.
// Any other shape decodes as BeneUnset.
func (b *BeneStatus) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*b = BeneUnset
		return nil
	}
	switch t := v.(type) {
	case string:
		*b = BeneStatus(t)
	case bool:
		*b = BeneNo
		if t {
			*b = BeneYes
		}
	case float64:
		switch t {
		case 1:
			*b = BeneYes
		case 0:
			*b = BeneNo
		default:
			*b = BeneUnset
		}
	default:
		*b = BeneUnset
	}
	return nil
}

// BeneficiaryShare is one line of a beneficiary designation
type BeneficiaryShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Asset is the canonical shape every raw intake record is normalized into
type Asset struct {
	ID                      string             `json:"id"`
	IDName                  string             `json:"idname"`
	Name                    string             `json:"name"`
	Category                Category           `json:"category"`
	OwnedBy                 OwnedBy            `json:"ownedBy"`
	OwnershipForm           OwnershipForm      `json:"ownershipForm"`
	RealEstateMode          RealEstateMode     `json:"realEstateMode,omitempty"`
	HasBene                 BeneStatus         `json:"has_bene"`
	PrimaryBeneficiaries    []BeneficiaryShare `json:"primary_beneficiaries"`
	ContingentBeneficiaries []BeneficiaryShare `json:"contingent_beneficiaries"`
	ApproximateValue        float64            `json:"approximate_value"`
	PercentOwned            float64            `json:"percentOwned"`
}

// Key returns the idname|id key that identifies the asset across documents.
func (a Asset) Key() string {
	return AssetKey(a.IDName, a.ID)
}

// AssetKey builds the idname|id key
func AssetKey(idName, id string) string {
	return idName + "|" + id
}

// NormalizedAssets groups canonical assets by category and also lists them flat
type NormalizedAssets struct {
	RealEstate    []Asset `json:"realEstate"`
	Bank          []Asset `json:"bank"`
	NQ            []Asset `json:"nq"`
	Retirement    []Asset `json:"retirement"`
	LifeInsurance []Asset `json:"lifeInsurance"`
	Business      []Asset `json:"business"`
	Digital       []Asset `json:"digital"`
	Other         []Asset `json:"other"`
	All           []Asset `json:"all"`
}
