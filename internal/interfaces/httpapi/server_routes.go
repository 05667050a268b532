package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/results", handler.ListPlayerResultsByYear)
}

// Admin routes mutate or expose maintenance state and share the internal job
// token with the job routes; there is no end-user auth on this service.
func registerAdminRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("GET /v1/admin/duplicates", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ListDuplicates)))
	mux.Handle("POST /v1/admin/duplicates/cleanup", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.CleanupDuplicates)))
	mux.Handle("DELETE /v1/admin/players/{playerID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.DeletePlayer)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/import", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunImport)))
	mux.Handle("POST /v1/internal/bio-updates", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ApplyBioUpdates)))
	mux.Handle("POST /v1/internal/rankings/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SyncRankings)))
}
