package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bebop-dex/go-sdk/api/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func NewRouter(
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
	statusHandler *handlers.StatusHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/{protocol}/quotes", quoteHandler.HandleRequest).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/{protocol}/orders", orderHandler.HandleRequest).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/{protocol}/orders/{quoteId}", statusHandler.HandleRequest).Methods("GET")
	return r
}

// Serve runs the gateway until ctx is done and waits for started lifecycles before returning.
func Serve(
	ctx context.Context,
	addr string,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
	statusHandler *handlers.StatusHandler,
) {
	server := &http.Server{
		Addr:        addr,
		Handler:     NewRouter(quoteHandler, orderHandler, statusHandler),
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

	orderHandler.Wait()
}
