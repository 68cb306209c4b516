package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = intake inputs, W2xxx = scenario routing, W3xxx = estate plan validation.
type WarningCode string

const (
	WarnInputsUnavailable WarningCode = "W1001" // a client document has not been stored yet; an empty one was used
	WarnUnhandledRouting  WarningCode = "W2001" // ownership combination not in the routing table; classified Probate/Unknown
	WarnPlanHasConflicts  WarningCode = "W3001" // estate plan validation found conflicts
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
