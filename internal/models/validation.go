package models

// ConflictType classifies a conflict between plan documents
type ConflictType string

const (
	ConflictBeneficiaryDevise ConflictType = "BeneficiaryDeviseConflict"
	ConflictDuplicateDevise   ConflictType = "DuplicateDevise"
)

// Severity of a conflict
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// PlanWarningType classifies an incomplete or inconsistent plan element
type PlanWarningType string

const (
	PlanWarnMissingExecutor             PlanWarningType = "MissingExecutor"
	PlanWarnPercentageNotComplete       PlanWarningType = "PercentageNotComplete"
	PlanWarnMissingResiduaryBeneficiary PlanWarningType = "MissingResiduaryBeneficiary"
	PlanWarnUnknownAssetReference       PlanWarningType = "UnknownAssetReference"
	PlanWarnUnknownFiduciary            PlanWarningType = "UnknownFiduciary"
)

// Document names used to tag findings
const (
	DocumentClientWill = "clientWill"
	DocumentSpouseWill = "spouseWill"
)

// Conflict is a provision that cannot take effect as written
type Conflict struct {
	Type        ConflictType `json:"type"`
	Severity    Severity     `json:"severity"`
	Document    string       `json:"document"`
	AssetID     string       `json:"assetId"`
	AssetIDName string       `json:"assetIdName"`
	AssetName   string       `json:"assetName"`
	Message     string       `json:"message"`
}

// PlanWarning is an incomplete or questionable plan element
type PlanWarning struct {
	Type     PlanWarningType `json:"type"`
	Document string          `json:"document"`
	Message  string          `json:"message"`
}

// EstatePlanValidation is the result of one validation run. Every run
// returns a fresh value.
type EstatePlanValidation struct {
	HasConflicts bool          `json:"hasConflicts"`
	Conflicts    []Conflict    `json:"conflicts"`
	Warnings     []PlanWarning `json:"warnings"`
}
