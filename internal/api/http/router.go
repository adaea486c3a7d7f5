package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, h *Handler) error {
	log.Printf("HTTP server listening on %s", addr)
	return http.ListenAndServe(addr, NewRouter(h))
}
