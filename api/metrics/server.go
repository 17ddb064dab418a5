// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics exposes a minimal HTTP surface for scraping a running
// engine: /metrics for prometheus and /healthz for liveness, built on
// gorilla/mux and rs/cors rather than the bare net/http ServeMux.
package metrics

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Server wraps an http.Server that serves /metrics and /healthz for a
// single engine's prometheus registry.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a Server bound to addr, scraping reg for /metrics.
func NewServer(addr string, reg *prometheus.Registry) *Server {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ListenAndServe blocks, serving until the server errors or is shut
// down.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Close shuts the server down immediately.
func (s *Server) Close() error {
	return s.httpServer.Close()
}
