package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/moneystream/moneystream/pkg/settings"
	log "github.com/sirupsen/logrus"
)

// maxImportSize bounds import uploads to keep a bad client from
// buffering arbitrary amounts of memory.
const maxImportSize = 10 << 20

type TransferHandler struct {
	service Service
}

func NewTransferHandler(service Service) *TransferHandler {
	return &TransferHandler{service}
}

func (handler *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := handler.service.Export(r.Context())
	if err != nil {
		if errors.Is(err, settings.ErrNotConfigured) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("moneystream-export-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Import(r.Context(), raw); err != nil {
		if errors.Is(err, ErrInvalidImport) {
			log.Debugf("rejected import: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
