package middleware

import (
	"github.com/gin-gonic/gin"

	pkgLog "gemini-provider/pkg/log"
)

// Config holds gateway protection settings.
type Config struct {
	RateLimitPerMin int      // 0 disables limiting
	AllowedIPs      []string // IPs or CIDRs; empty allows everyone
	TrustedProxies  []string // IPs or CIDRs whose X-Forwarded-For is honored; empty trusts none
}

type Middleware struct {
	l              pkgLog.Logger
	limiter        *rateLimiter
	allowedIPs     []string
	trustedProxies []string
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	m := Middleware{
		l:              l,
		allowedIPs:     cfg.AllowedIPs,
		trustedProxies: cfg.TrustedProxies,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}

// TrustProxies restricts which peers may set the client IP through forwarding
// headers. AllowIPs and RateLimit key on c.ClientIP(), so this must run on the
// engine before they are installed.
func (m Middleware) TrustProxies(r *gin.Engine) error {
	return r.SetTrustedProxies(m.trustedProxies)
}
