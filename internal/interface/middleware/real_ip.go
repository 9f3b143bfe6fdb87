package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP stores the client address under "real_ip" for request logs.
// CF-Connecting-IP wins over the left-most X-Forwarded-For entry, which wins
// over gin's ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := firstIP(
			c.GetHeader("CF-Connecting-IP"),
			strings.Split(c.GetHeader("X-Forwarded-For"), ",")[0],
		)
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

func firstIP(candidates ...string) string {
	for _, s := range candidates {
		if ip := net.ParseIP(strings.TrimSpace(s)); ip != nil {
			return ip.String()
		}
	}
	return ""
}
