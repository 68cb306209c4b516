package models

// ScenarioKind selects the death order being modeled
type ScenarioKind string

const (
	ScenarioClientFirst  ScenarioKind = "client-first"
	ScenarioSpouseFirst  ScenarioKind = "spouse-first"
	ScenarioBothDeceased ScenarioKind = "both-deceased"
)

// ValidScenarioKinds lists the kinds in display order
var ValidScenarioKinds = []ScenarioKind{ScenarioClientFirst, ScenarioSpouseFirst, ScenarioBothDeceased}

// TransferMechanism is the legal path by which an asset moves at death
type TransferMechanism string

const (
	MechanismProbate                TransferMechanism = "Probate"
	MechanismSurvivorship           TransferMechanism = "Survivorship"
	MechanismBeneficiaryDesignation TransferMechanism = "Beneficiary Designation"
	MechanismLifeEstate             TransferMechanism = "Life Estate"
	MechanismLadyBird               TransferMechanism = "Lady Bird Deed"
	MechanismTrust                  TransferMechanism = "Trust"
	MechanismLLC                    TransferMechanism = "LLC"
	MechanismUnaffected             TransferMechanism = "Unaffected"
)

// Inheritor names used when no person can be named
const (
	InheritorEstateHeirs        = "Estate/Heirs"
	InheritorTrustBeneficiaries = "Trust Beneficiaries"
	InheritorLLCMembers         = "LLC Members"
	InheritorDesignated         = "Designated Beneficiary"
	InheritorRemainderman       = "Remainderman"
	InheritorOtherJointOwner    = "Other Joint Owner"
	InheritorUnknown            = "Unknown"
)

// Relationship labels carried on each inheritor
const (
	RelationshipSpouse      = "Spouse"
	RelationshipBeneficiary = "Beneficiary"
	RelationshipHeirs       = "Heirs"
	RelationshipTrust       = "Trust"
	RelationshipLLC         = "LLC"
	RelationshipRemainder   = "Remainderman"
	RelationshipJointOwner  = "Joint Owner"
	RelationshipUnknown     = "Unknown"
)

// Inheritor is one recipient of an asset in a scenario. Value is
// calculatedValue * Percentage / 100.
type Inheritor struct {
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Percentage   float64 `json:"percentage"`
	Value        float64 `json:"value"`
}

// ScenarioAsset is an asset snapshot classified for one scenario
type ScenarioAsset struct {
	Asset
	CalculatedValue   float64           `json:"calculatedValue"`
	TransferMechanism TransferMechanism `json:"transferMechanism"`
	Inheritors        []Inheritor       `json:"inheritors"`
}

// BucketKey names a group of scenario assets
type BucketKey string

const (
	BucketClientProbate     BucketKey = "clientProbate"
	BucketClientNonProbate  BucketKey = "clientNonProbate"
	BucketClientJointSpouse BucketKey = "clientJointSpouse"
	BucketClientJointOther  BucketKey = "clientJointOther"
	BucketClientSole        BucketKey = "clientSole"
	BucketSpouseProbate     BucketKey = "spouseProbate"
	BucketSpouseNonProbate  BucketKey = "spouseNonProbate"
	BucketSpouseJointClient BucketKey = "spouseJointClient"
	BucketSpouseJointOther  BucketKey = "spouseJointOther"
	BucketSpouseSole        BucketKey = "spouseSole"
	BucketTrust             BucketKey = "trustAssets"
	BucketLLC               BucketKey = "llcAssets"
)

// Bucket is a named group of classified assets and their total
type Bucket struct {
	Key    BucketKey       `json:"key"`
	Assets []ScenarioAsset `json:"assets"`
	Total  float64         `json:"total"`
}

// HeirAsset is one asset's contribution to an heir. Percentage is the heir's
// share of the asset's full approximate value.
type HeirAsset struct {
	AssetID       string            `json:"assetId"`
	AssetIDName   string            `json:"assetIdName"`
	AssetName     string            `json:"assetName"`
	Category      Category          `json:"category"`
	Mechanism     TransferMechanism `json:"mechanism"`
	Percentage    float64           `json:"percentage"`
	Value         float64           `json:"value"`
	OriginalOwner OwnedBy           `json:"originalOwner"`
}

// HeirDistribution totals everything one inheritor receives once both
// spouses have died
type HeirDistribution struct {
	Name       string      `json:"name"`
	TotalValue float64     `json:"totalValue"`
	Assets     []HeirAsset `json:"assets"`
}

// ScenarioContainer is the full result of one scenario run. It is built
// fresh on every run and never patched.
type ScenarioContainer struct {
	Kind              ScenarioKind       `json:"kind"`
	ClientName        string             `json:"clientName"`
	SpouseName        string             `json:"spouseName"`
	Buckets           []Bucket           `json:"buckets"`
	GrandTotal        float64            `json:"grandTotal"`
	HeirDistributions []HeirDistribution `json:"heirDistributions,omitempty"`
	Diagnostics       []Warning          `json:"diagnostics"`
}

// Bucket returns the bucket with the given key, or nil if the scenario kind
// has no such bucket.
func (s *ScenarioContainer) Bucket(key BucketKey) *Bucket {
	for i := range s.Buckets {
		if s.Buckets[i].Key == key {
			return &s.Buckets[i]
		}
	}
	return nil
}
