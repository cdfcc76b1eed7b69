package eventtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jengzang/handover-backend-go/internal/models"
)

// Columns is the number of fields in every event table row
const Columns = 5

var (
	// ErrNoRows is returned when a table has a header but no data rows
	ErrNoRows = errors.New("event table has no rows")
	// ErrColumnCount is returned when a row does not have Columns fields
	ErrColumnCount = errors.New("unexpected column count")
)

// Parse reads an event table: one header row followed by rows of Columns
// fields. Commas inside double-quoted fields are kept; blank lines are skipped.
func Parse(r io.Reader) ([]models.EventRow, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read event table: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrNoRows
	}

	rows := make([]models.EventRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != Columns {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrColumnCount, i+2, len(rec))
		}
		rows = append(rows, rowFromFields(rec))
	}
	return rows, nil
}

func rowFromFields(f []string) models.EventRow {
	return models.EventRow{
		Code:          strings.TrimSpace(f[0]),
		Description:   strings.TrimSpace(f[1]),
		Trigger:       strings.TrimSpace(f[2]),
		ConditionType: strings.TrimSpace(f[3]),
		Action:        strings.TrimSpace(f[4]),
	}
}
