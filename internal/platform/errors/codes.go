// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"

	// Order lifecycle errors
	CodeFacilityNotIdle        Code = "FACILITY_NOT_IDLE"
	CodeFacilityIdle           Code = "FACILITY_IDLE"
	CodeFacilityNotSpecial     Code = "FACILITY_NOT_SPECIAL"
	CodeFacilityNotBasic       Code = "FACILITY_NOT_BASIC"
	CodeOrderUnknown           Code = "ORDER_UNKNOWN"
	CodeInvalidOrderParameters Code = "INVALID_ORDER_PARAMETERS"
	CodeAdvanceDaysInvalid     Code = "ADVANCE_DAYS_INVALID"

	// Acquisition errors
	CodeLimitExceeded          Code = "LIMIT_EXCEEDED"
	CodeCharacterLevelTooLow   Code = "CHARACTER_LEVEL_TOO_LOW"
	CodeFacilityAlreadyPresent Code = "FACILITY_ALREADY_PRESENT"
	CodeFacilityUnknownName    Code = "FACILITY_UNKNOWN_NAME"
	CodeSizeUnknown            Code = "SIZE_UNKNOWN"
	CodeSizeTransitionInvalid  Code = "SIZE_TRANSITION_INVALID"

	// Event errors
	CodeEventUnknown         Code = "EVENT_UNKNOWN"
	CodeEventRollOutOfRange  Code = "EVENT_ROLL_OUT_OF_RANGE"
	CodeThreatLevelUnknown   Code = "THREAT_LEVEL_UNKNOWN"
)

// Kind groups codes into the failure families callers branch on.
type Kind int

const (
	// KindUnknown covers unclassified internal failures.
	KindUnknown Kind = iota
	// KindNotFound covers absent campaigns, bastions, facilities, and
	// rules-catalog references.
	KindNotFound
	// KindInvalidState covers operations whose preconditions do not hold.
	KindInvalidState
	// KindInvalidOrderParameters covers missing or non-positive values for
	// variable-duration or variable-cost orders.
	KindInvalidOrderParameters
	// KindLimitExceeded covers acquisition caps.
	KindLimitExceeded
	// KindStoreUnavailable covers transient backing-store failures that a
	// caller may retry.
	KindStoreUnavailable
)

// Kind maps domain codes to failure families.
func (c Code) Kind() Kind {
	switch c {
	// Absent references
	case CodeNotFound,
		CodeOrderUnknown,
		CodeFacilityUnknownName,
		CodeEventUnknown,
		CodeSizeUnknown:
		return KindNotFound

	// Preconditions violated
	case CodeFacilityNotIdle,
		CodeFacilityIdle,
		CodeFacilityNotSpecial,
		CodeFacilityNotBasic,
		CodeFacilityAlreadyPresent,
		CodeCharacterLevelTooLow,
		CodeSizeTransitionInvalid,
		CodeAdvanceDaysInvalid,
		CodeEventRollOutOfRange,
		CodeThreatLevelUnknown:
		return KindInvalidState

	case CodeInvalidOrderParameters:
		return KindInvalidOrderParameters

	case CodeLimitExceeded:
		return KindLimitExceeded

	case CodeStoreUnavailable:
		return KindStoreUnavailable

	default:
		return KindUnknown
	}
}
