package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV пишет заголовок и строки. Значения с запятыми, кавычками и
// переводами строк экранируются по RFC 4180
func WriteCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers(columns)); err != nil {
		return fmt.Errorf("%w: csv header: %v", ErrWrite, err)
	}
	for _, row := range rows {
		if err := cw.Write(record(columns, row)); err != nil {
			return fmt.Errorf("%w: csv row: %v", ErrWrite, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: csv flush: %v", ErrWrite, err)
	}
	return nil
}
