package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Entries
	r.HandleFunc("/api/entry", deps.EntryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/entry", deps.EntryHandler.Create).Methods("POST")
	r.HandleFunc("/api/entry/{id}", deps.EntryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/entry/{id}", deps.EntryHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/entry/{id}/occurrence", deps.EntryHandler.DeleteOccurrence).Queries("date", "{date}").Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.Update).Methods("PUT")
	r.HandleFunc("/api/settings/balance", deps.SettingsHandler.SetInitialBalance).Methods("PUT")

	// Balance projection
	r.HandleFunc("/api/balance", deps.ProjectionHandler.GetBalance).Queries("date", "{date}").Methods("GET")

	// Timeline
	r.HandleFunc("/api/timeline", deps.TimelineHandler.GetRows).Queries("from", "{from}", "to", "{to}").Methods("GET")

	// Export / import
	r.HandleFunc("/api/transfer/export", deps.TransferHandler.Export).Methods("GET")
	r.HandleFunc("/api/transfer/import", deps.TransferHandler.Import).Methods("POST")
}
