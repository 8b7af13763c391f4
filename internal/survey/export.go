package survey

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"
)

// ExportCSV renders a frame into CSV bytes, preserving column order.
// Missing numeric cells become empty fields.
func ExportCSV(f *Frame) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	cols := f.Columns()
	if err := w.Write(cols); err != nil {
		return nil, err
	}
	for i := 0; i < f.Len(); i++ {
		rec := make([]string, 0, len(cols))
		for _, col := range cols {
			if vals, ok := f.Text(col); ok {
				rec = append(rec, vals[i])
				continue
			}
			vals, _ := f.Numeric(col)
			v := vals[i]
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
