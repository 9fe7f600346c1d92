package middleware

// identity.go provides the user identity lookup shared by the rate
// limiter and cache key builders. JWTAuth stores the token subject
// under "user_id"; unauthenticated requests resolve to "anon".

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's identifier as a string,
// or "anon" when the request carries no valid token. The subject claim
// may decode as a string or a JSON number depending on the issuer.
func currentUserID(c echo.Context) string {
    v := c.Get("user_id")
    if v == nil {
        return "anon"
    }
    switch s := v.(type) {
    case string:
        if s != "" {
            return s
        }
    case float64:
        return strconv.FormatUint(uint64(s), 10)
    case uint64:
        return strconv.FormatUint(s, 10)
    }
    return "anon"
}
