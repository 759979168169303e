package middleware

import "time"

const (
	HeaderUserID    = "X-User-ID"
	HeaderUsername  = "X-Username"
	HeaderRequestID = "X-Request-ID"
)

const (
	defaultLimiterCapacity = 10000
	limiterTTL             = 5 * time.Minute
)
