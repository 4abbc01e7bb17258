// Package handler exposes the API as a single serverless function.
package handler

import (
	"net/http"
	"rideflow/config"
	"rideflow/di"
	"rideflow/shared/logger"
	"sync"
)

var (
	server http.Handler
	boot   sync.Once
)

// Handler wires the service on the first invocation and reuses it while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	boot.Do(func() {
		logger.InitLogger()
		logger.SetLogLevel(config.Get())

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
