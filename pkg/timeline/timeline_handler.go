package timeline

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/moneystream/moneystream/internal/rest"
	"github.com/moneystream/moneystream/pkg/entry"
	"github.com/moneystream/moneystream/pkg/settings"
)

type OccurrenceDTO struct {
	Entry entry.EntryDTO `json:"entry"`
	Date  string         `json:"date"`
}

type RowDTO struct {
	Date          string          `json:"date"`
	Occurrences   []OccurrenceDTO `json:"occurrences"`
	Balance       json.Number     `json:"balance"`
	IsToday       bool            `json:"isToday"`
	IsMonthStart  bool            `json:"isMonthStart"`
	IsMonthEnd    bool            `json:"isMonthEnd"`
	DaysSkipped   int             `json:"daysSkipped"`
	MonthEndTrend string          `json:"monthEndTrend"`
}

type TimelineHandler struct {
	service  Service
	renderer Renderer
}

func NewTimelineHandler(service Service, renderer Renderer) *TimelineHandler {
	return &TimelineHandler{service, renderer}
}

func (handler *TimelineHandler) GetRows(w http.ResponseWriter, r *http.Request) {
	from, err := date.ParseWire(r.URL.Query().Get("from"))
	if err != nil {
		writeDateError(w, "from")
		return
	}
	to, err := date.ParseWire(r.URL.Query().Get("to"))
	if err != nil {
		writeDateError(w, "to")
		return
	}

	rows, err := handler.service.Rows(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, settings.ErrNotConfigured) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.renderer.RenderRows(rows)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rowsToDTO(rows)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeDateError(w http.ResponseWriter, param string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid " + param + " date format",
		Details: param + " must be in RFC3339 format",
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func rowsToDTO(rows []Row) []RowDTO {
	dtos := make([]RowDTO, 0, len(rows))
	for _, row := range rows {
		occurrences := make([]OccurrenceDTO, 0, len(row.Occurrences))
		for _, occ := range row.Occurrences {
			occurrences = append(occurrences, OccurrenceDTO{
				Entry: entry.EntryToDTO(occ.Entry),
				Date:  occ.Date.WireString(),
			})
		}
		dtos = append(dtos, RowDTO{
			Date:          row.Date.String(),
			Occurrences:   occurrences,
			Balance:       json.Number(row.Balance.String()),
			IsToday:       row.IsToday,
			IsMonthStart:  row.IsMonthStart,
			IsMonthEnd:    row.IsMonthEnd,
			DaysSkipped:   row.DaysSkipped,
			MonthEndTrend: string(row.MonthEndTrend),
		})
	}
	return dtos
}
