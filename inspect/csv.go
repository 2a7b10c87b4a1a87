package inspect

import (
	"bytes"
	"encoding/csv"
)

// ColumnsCSV renders the column references of a result to CSV.
func ColumnsCSV(res InspectResult, withHeader bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if withHeader {
		_ = w.Write([]string{"name", "usage", "table"})
	}

	table := ""
	if len(res.Tables) > 0 {
		table = res.Tables[0]
	}

	if res.Wildcard {
		_ = w.Write([]string{"*", "select", table})
	}

	for _, c := range res.Columns {
		_ = w.Write([]string{c.Name, c.Usage, table})
	}

	w.Flush()

	return buf.Bytes(), w.Error()
}
