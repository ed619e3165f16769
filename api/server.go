package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/api/handlers"
)

func Serve(
	ctx context.Context,
	addr string,
	requestsHandler *handlers.RequestsHandler,
	statusHandler *handlers.StatusHandler,
	infoHandler *handlers.InfoHandler,
	retryHandler *handlers.RetryHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/vaults/{chainId:[0-9]+}/requests", requestsHandler.HandleRequest).Methods("POST")
	r.HandleFunc("/v1/vaults/{chainId:[0-9]+}/requests/{requestId}", statusHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/vaults/{chainId:[0-9]+}/requests/{requestId}/info", infoHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/vaults/{chainId:[0-9]+}/requests/{requestId}/retry", retryHandler.HandleRequest).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/quote", quoteHandler.HandleRequest).Methods("GET")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
