package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                = "UNKNOWN"
	CodeNotFound               = "NOT_FOUND"
	CodeStoreUnavailable       = "STORE_UNAVAILABLE"
	CodeFacilityNotIdle        = "FACILITY_NOT_IDLE"
	CodeFacilityIdle           = "FACILITY_IDLE"
	CodeFacilityNotSpecial     = "FACILITY_NOT_SPECIAL"
	CodeFacilityNotBasic       = "FACILITY_NOT_BASIC"
	CodeOrderUnknown           = "ORDER_UNKNOWN"
	CodeInvalidOrderParameters = "INVALID_ORDER_PARAMETERS"
	CodeAdvanceDaysInvalid     = "ADVANCE_DAYS_INVALID"
	CodeLimitExceeded          = "LIMIT_EXCEEDED"
	CodeCharacterLevelTooLow   = "CHARACTER_LEVEL_TOO_LOW"
	CodeFacilityAlreadyPresent = "FACILITY_ALREADY_PRESENT"
	CodeFacilityUnknownName    = "FACILITY_UNKNOWN_NAME"
	CodeSizeUnknown            = "SIZE_UNKNOWN"
	CodeSizeTransitionInvalid  = "SIZE_TRANSITION_INVALID"
	CodeEventUnknown           = "EVENT_UNKNOWN"
	CodeEventRollOutOfRange    = "EVENT_ROLL_OUT_OF_RANGE"
	CodeThreatLevelUnknown     = "THREAT_LEVEL_UNKNOWN"
)

var enUSCatalog = NewCatalog("en-US", map[Code]string{
	CodeUnknown:          "An unexpected error occurred",
	CodeNotFound:         "{{.Entity}} {{.ID}} was not found",
	CodeStoreUnavailable: "The record store is temporarily unavailable, try again",

	CodeFacilityNotIdle:        "{{.Facility}} is already busy with {{.Task}}",
	CodeFacilityIdle:           "{{.Facility}} has no order to cancel",
	CodeFacilityNotSpecial:     "{{.Facility}} is a basic facility and cannot take orders",
	CodeFacilityNotBasic:       "{{.Facility}} is a special facility and cannot be enlarged",
	CodeOrderUnknown:           "{{.Facility}} does not offer the order {{.Order}}",
	CodeInvalidOrderParameters: "The order {{.Order}} needs a duration and cost supplied by the issuer",
	CodeAdvanceDaysInvalid:     "Time must advance by at least one day",

	CodeLimitExceeded:          "No more special facilities can be acquired at level {{.Level}} (limit {{.Limit}})",
	CodeCharacterLevelTooLow:   "{{.Facility}} requires character level {{.RequiredLevel}}",
	CodeFacilityAlreadyPresent: "The bastion already has a {{.Facility}}",
	CodeFacilityUnknownName:    "{{.Facility}} is not a known facility",
	CodeSizeUnknown:            "{{.Size}} is not a valid facility size",
	CodeSizeTransitionInvalid:  "A {{.Current}} facility cannot be enlarged to {{.Target}}",

	CodeEventUnknown:        "{{.Event}} is not a known bastion event",
	CodeEventRollOutOfRange: "Event rolls must fall between 1 and 100",
	CodeThreatLevelUnknown:  "{{.Threat}} is not a valid threat level",
})
