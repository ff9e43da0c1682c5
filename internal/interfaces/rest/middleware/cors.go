package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows any origin to call an endpoint with the given methods.
// Preflights are answered with 200.
func CORS(methods ...string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       methods,
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler
}
