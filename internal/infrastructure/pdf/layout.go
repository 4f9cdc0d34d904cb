package pdf

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// itemsPerPage is how many line-item rows fit under the table header
// before the document breaks to a fresh page.
const itemsPerPage = 25

// maxDescriptionLen is the widest description the table column holds.
const maxDescriptionLen = 30

// truncateDescription shortens long descriptions with a trailing ellipsis.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen]) + "..."
}

// money renders an amount as "$123.45".
func money(d decimal.Decimal) string {
	return fmt.Sprintf("$%.2f", d.InexactFloat64())
}

// treatmentDateFormats are the legacy free-text date layouts seen in
// stored records, tried in order.
var treatmentDateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02-01-2006",
}

// parseTreatmentDate parses a legacy date string leniently. Unparseable
// or empty input falls back to now; the document always shows a date.
func parseTreatmentDate(s string, now time.Time) time.Time {
	for _, layout := range treatmentDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

// paginateItems splits line items into pages of itemsPerPage rows. Each
// page repeats the table header when rendered.
func paginateItems(items []entity.LineItem) [][]entity.LineItem {
	if len(items) == 0 {
		return [][]entity.LineItem{nil}
	}
	var pages [][]entity.LineItem
	for start := 0; start < len(items); start += itemsPerPage {
		end := start + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}
