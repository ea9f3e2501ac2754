package handler

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgRequestDecoded = "Request decoded"
	LogMsgReadyzFailed   = "Readiness check failed"
)

// Custom validation tags
const (
	TagLoginID  = "loginid"
	TagItemType = "itemtype"
	TagStatKeys = "statkeys"
)

const (
	ContentTypeJSON = "application/json"

	// ErrMsgInvalidRequestSummary heads the field map of a validation failure
	ErrMsgInvalidRequestSummary = "Invalid request"

	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
