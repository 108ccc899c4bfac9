package auth

import "time"

// HTTP header values
const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer"
)

// ClockSkewLeeway tolerates small clock differences with the identity provider
const ClockSkewLeeway = 30 * time.Second

// Messages
const (
	ErrMsgUnauthorized  = "Unauthorized"
	LogMsgTokenRejected = "Bearer token rejected"
)
