package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS returns CORS middleware built on rs/cors for the given
// comma-separated list of allowed origins. Empty input falls back to
// the local dev frontend.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	origins := []string{"http://localhost:3000"}
	for _, origin := range strings.Split(frontendURL, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		exists := false
		for _, existing := range origins {
			if existing == trimmed {
				exists = true
				break
			}
		}
		if !exists {
			origins = append(origins, trimmed)
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return c.Handler
}
