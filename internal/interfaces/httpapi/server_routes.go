package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/matches", handler.ListMatchesByDate)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchDetail)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/warm-matches", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmMatchesJob)))
}
