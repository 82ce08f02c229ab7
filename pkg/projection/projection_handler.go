package projection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/rest"
	"github.com/moneystream/moneystream/pkg/settings"
)

type BalanceDTO struct {
	Date    string      `json:"date"`
	Balance json.Number `json:"balance"`
}

type ProjectionHandler struct {
	service Service
}

func NewProjectionHandler(service Service) *ProjectionHandler {
	return &ProjectionHandler{service}
}

func (handler *ProjectionHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	d, err := date.ParseWire(r.URL.Query().Get("date"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "date must be in RFC3339 format",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	balance, err := handler.service.BalanceOn(r.Context(), d)
	if err != nil {
		if errors.Is(err, settings.ErrNotConfigured) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BalanceDTO{
		Date:    d.WireString(),
		Balance: json.Number(balance.String()),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
