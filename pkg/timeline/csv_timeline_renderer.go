package timeline

import (
	"bytes"
	"encoding/csv"

	"github.com/moneystream/moneystream/pkg/entry"
	log "github.com/sirupsen/logrus"
)

type Renderer interface {
	RenderRows(rows []Row) (string, error)
}

type CsvTimelineRendererImpl struct {
}

func NewCsvTimelineRenderer() *CsvTimelineRendererImpl {
	return &CsvTimelineRendererImpl{}
}

// RenderRows renders one CSV line per occurrence; days kept only as
// today or month-end markers get a single line with empty entry fields
// so the running balance is still visible.
func (t *CsvTimelineRendererImpl) RenderRows(rows []Row) (string, error) {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, []string{"date", "label", "type", "amount", "balance"})

	for _, row := range rows {
		dateString := row.Date.String()
		balanceString := row.Balance.String()
		if len(row.Occurrences) == 0 {
			data = append(data, []string{dateString, "", "", "", balanceString})
			continue
		}
		for _, occ := range row.Occurrences {
			amount := occ.Entry.Amount.String()
			if occ.Entry.Type == entry.TypeExpense {
				amount = "-" + amount
			}
			data = append(data, []string{
				dateString,
				occ.Entry.Label,
				string(occ.Entry.Type),
				amount,
				balanceString,
			})
		}
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
