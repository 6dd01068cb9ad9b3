package shopping

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

type lineKey struct {
	name string
	unit string
}

// Aggregate groups rows by (name, unit), sums their amounts and orders the
// lines by name then unit using the collation rules of lang.
func Aggregate(rows []domain.ShoppingRow, lang language.Tag) domain.ShoppingList {
	totals := make(map[lineKey]int64, len(rows))
	for _, row := range rows {
		totals[lineKey{name: row.Name, unit: row.Unit}] += int64(row.Amount)
	}

	lines := make([]domain.ShoppingLine, 0, len(totals))
	for key, amount := range totals {
		lines = append(lines, domain.ShoppingLine{Name: key.name, Unit: key.unit, Amount: amount})
	}

	// Collators are not safe for concurrent use
	col := collate.New(lang)
	sort.SliceStable(lines, func(i, j int) bool {
		if c := col.CompareString(lines[i].Name, lines[j].Name); c != 0 {
			return c < 0
		}
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return col.CompareString(lines[i].Unit, lines[j].Unit) < 0
	})

	return domain.ShoppingList{Lines: lines}
}

// Render formats the list as a header line followed by one
// "<name> (<unit>) - <amount>" line per entry.
func Render(list domain.ShoppingList) string {
	var b strings.Builder
	b.WriteString(domain.ShoppingListHeader)
	for _, line := range list.Lines {
		b.WriteByte('\n')
		b.WriteString(line.Name)
		b.WriteString(" (")
		b.WriteString(line.Unit)
		b.WriteString(") - ")
		b.WriteString(strconv.FormatInt(line.Amount, 10))
	}
	return b.String()
}
