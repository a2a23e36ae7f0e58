package middleware

import (
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseCIDRs parses an allowlist, failing on the first invalid entry.
func ParseCIDRs(allowed []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(allowed))
	for _, cidr := range allowed {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}

// AllowlistMiddleware rejects clients outside the given CIDR ranges.
// An empty list admits everyone. Invalid entries are logged and skipped.
func AllowlistMiddleware(allowed []string) gin.HandlerFunc {
	// Parse allowlist into CIDR ranges
	allowedCIDRs := make([]*net.IPNet, 0, len(allowed))
	for _, cidr := range allowed {
		nets, err := ParseCIDRs([]string{cidr})
		if err != nil {
			log.Printf("allowlist: skipping %v", err)
			continue
		}
		allowedCIDRs = append(allowedCIDRs, nets...)
	}
	if len(allowed) > 0 && len(allowedCIDRs) == 0 {
		log.Printf("allowlist: no valid entries in %v, every client will be rejected", allowed)
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		// Extract client IP
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range allowedCIDRs {
			if ipNet.Contains(clientIP) {
				c.Next()
				return
			}
		}

		c.AbortWithStatus(403)
	}
}

// extractIP extracts the client IP from the request
func extractIP(c *gin.Context) net.IP {
	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		// If no port, use the whole string
		host = c.Request.RemoteAddr
	}

	return net.ParseIP(host)
}
