package configs

import "time"

type HTTP struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	FrontendURL string   `env:"FRONTEND_URL" envDefault:"http://localhost:3001"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`
	AdminToken  string   `env:"ADMIN_TOKEN"`

	// 100 requests per 15 minutes per client on the public vote routes
	RateLimitWindow      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
	RateLimitMaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
}

// AllowedOrigins is the CORS allow-list: the configured origins plus the front end.
func (c HTTP) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.CORSOrigins)+1)
	seen := make(map[string]bool)
	for _, origin := range append(c.CORSOrigins, c.FrontendURL) {
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		origins = append(origins, origin)
	}
	return origins
}
