package router

import (
	"net/http"
	"time"

	"github.com/cindyhont/jobly-backend/config"
	"github.com/cindyhont/jobly-backend/log"
	"github.com/cindyhont/jobly-backend/rest/common"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

var Router *httprouter.Router

func init() {
	Router = httprouter.New()
	Router.NotFound = http.HandlerFunc(common.NotFound)
}

// Handler wraps Router with request ids and CORS.
func Handler(cfg *config.Config) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return common.RequestID(c.Handler(Router))
}

func Listen(cfg *config.Config) error {
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           Handler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("listening on %s", server.Addr)
	return server.ListenAndServe()
}
