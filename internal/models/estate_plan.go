package models

// HeirType describes how a possible inheritor relates to the household
type HeirType string

const (
	HeirSpouse  HeirType = "spouse"
	HeirChild   HeirType = "child"
	HeirFamily  HeirType = "family"
	HeirCharity HeirType = "charity"
	HeirOther   HeirType = "other"
)

// PoolSource records which list a fiduciary pool member came from
type PoolSource string

const (
	PoolSourceClient PoolSource = "client"
	PoolSourceSpouse PoolSource = "spouse"
	PoolSourceManual PoolSource = "manual"
)

// Heir is a possible inheritor as entered on the client or spouse intake
type Heir struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type HeirType `json:"type"`
}

// HeirLists holds the raw heir lists and manually added pool entries for a client
type HeirLists struct {
	ClientHeirs []Heir                `json:"client_heirs"`
	SpouseHeirs []Heir                `json:"spouse_heirs"`
	ManualPool  []FiduciaryPoolMember `json:"manual_pool"`
}

// FiduciaryPoolMember is a person or entity that can be named as an
// executor, trustee or beneficiary
type FiduciaryPoolMember struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     HeirType   `json:"type"`
	Source   PoolSource `json:"source"`
	IsEntity bool       `json:"isEntity"`
}

// BeneficiaryDesignation names a pool member and their share
type BeneficiaryDesignation struct {
	PoolID     string  `json:"poolId"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	PerStirpes bool    `json:"perStirpes"`
	IsEntity   bool    `json:"isEntity"`
}

// ExecutorRole distinguishes the first-named executor from alternates
type ExecutorRole string

const (
	ExecutorPrimary   ExecutorRole = "primary"
	ExecutorAlternate ExecutorRole = "alternate"
)

// Executor is a personal representative named in a will
type Executor struct {
	PoolID string       `json:"poolId"`
	Name   string       `json:"name"`
	Role   ExecutorRole `json:"role"`
}

// SpecificGift leaves one identified asset to named beneficiaries. Devises
// are real property, bequests are personal property.
type SpecificGift struct {
	AssetID       string                   `json:"assetId"`
	AssetIDName   string                   `json:"assetIdName"`
	AssetName     string                   `json:"assetName"`
	Beneficiaries []BeneficiaryDesignation `json:"beneficiaries"`
}

// Key returns the idname|id key of the gifted asset
func (g SpecificGift) Key() string {
	return AssetKey(g.AssetIDName, g.AssetID)
}

// GeneralBequest is a gift of money not tied to a particular asset
type GeneralBequest struct {
	Beneficiary BeneficiaryDesignation `json:"beneficiary"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description,omitempty"`
}

// Testator identifies whose will a document is
type Testator string

const (
	TestatorClient Testator = "client"
	TestatorSpouse Testator = "spouse"
)

// Will is the testamentary document of one spouse
type Will struct {
	ID                  string                   `json:"id"`
	Testator            Testator                 `json:"testator"`
	Executors           []Executor               `json:"executors"`
	SpecificDevises     []SpecificGift           `json:"specificDevises"`
	SpecificBequests    []SpecificGift           `json:"specificBequests"`
	GeneralBequests     []GeneralBequest         `json:"generalBequests"`
	ResiduaryPrimary    []BeneficiaryDesignation `json:"residuaryPrimary"`
	ResiduaryContingent []BeneficiaryDesignation `json:"residuaryContingent"`
}

// Trust is a revocable or irrevocable trust document
type Trust struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Trustees      []Executor               `json:"trustees"`
	Beneficiaries []BeneficiaryDesignation `json:"beneficiaries"`
}

// EstatePlan is the document graph read by the validator. The engine never
// modifies it.
type EstatePlan struct {
	Married       bool                  `json:"married"`
	ClientWill    *Will                 `json:"clientWill"`
	SpouseWill    *Will                 `json:"spouseWill"`
	Trusts        []Trust               `json:"trusts"`
	FiduciaryPool []FiduciaryPoolMember `json:"fiduciaryPool"`
}
