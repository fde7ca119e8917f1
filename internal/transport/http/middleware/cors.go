package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsHeaders = strings.Join([]string{"Authorization", "Content-Type", AdminKeyHeader, RequestIDHeader}, ", ")
)

// CORS answers preflight requests and echoes Origin back when it is on the allow-list.
// A "*" entry allows any origin, but only explicitly listed origins may send credentials;
// wildcard matches get "Access-Control-Allow-Origin: *". Disallowed origins get no CORS headers.
func CORS(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		match := matchOrigin(origin, allowed)
		if match == originDenied {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
			return
		}

		header := c.Writer.Header()
		header.Add("Vary", "Origin")
		header.Set("Access-Control-Allow-Methods", corsMethods)
		header.Set("Access-Control-Allow-Headers", corsHeaders)
		header.Set("Access-Control-Expose-Headers", RequestIDHeader)
		if match == originListed {
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
		} else {
			header.Set("Access-Control-Allow-Origin", "*")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type originMatch int

const (
	originDenied originMatch = iota
	originWildcard
	originListed
)

// matchOrigin prefers an explicit entry over "*" wherever they appear in the list.
func matchOrigin(origin string, allowed []string) originMatch {
	match := originDenied
	for _, candidate := range allowed {
		candidate = strings.TrimSpace(candidate)
		if strings.EqualFold(strings.TrimSuffix(candidate, "/"), origin) {
			return originListed
		}
		if candidate == "*" {
			match = originWildcard
		}
	}
	return match
}
