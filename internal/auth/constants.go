package auth

import "time"

const (
	DefaultAccessTokenTTL  = 12 * time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	TokenIssuer = "armory"

	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"
)
