package user

// Log messages
const (
	LogMsgUserSignedUp         = "User signed up"
	LogMsgUserSignedIn         = "User signed in"
	LogMsgRefreshTokenIssued   = "Refresh token issued"
	LogMsgAccessTokenRefreshed = "Access token refreshed"
)

// Validation messages
const (
	ErrMsgInvalidLoginID  = "login id must be lowercase letters and digits"
	ErrMsgInvalidPassword = "password must be at least 6 characters"
	ErrMsgInvalidName     = "name is required"
	ErrMsgInvalidAge      = "age must not be negative"
)
