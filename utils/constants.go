// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for session cache entries.
const AuthCacheTTL = 10 * time.Minute

// BlockedDatesCachePrefix is the prefix for cached blocked-dates responses.
const BlockedDatesCachePrefix = "blockedDates:"

// BlockedDatesCacheTTL keeps blocked-dates responses hot between month navigations.
const BlockedDatesCacheTTL = time.Minute
