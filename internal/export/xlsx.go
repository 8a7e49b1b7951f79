package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31
	headerRowNum = 1
	firstDataRow = 2
)

// WriteXLSX пишет книгу с одним листом: жирный заголовок и строки
func WriteXLSX[T any](w io.Writer, sheet string, columns []Column[T], rows []T) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	if sheet == "" {
		sheet = defaultSheet
	}
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("%w: xlsx sheet name: %v", ErrWrite, err)
		}
	}

	if err := setRow(f, sheet, headerRowNum, headers(columns)); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: xlsx header style: %v", ErrWrite, err)
	}
	if err := f.SetRowStyle(sheet, headerRowNum, headerRowNum, style); err != nil {
		return fmt.Errorf("%w: xlsx header style: %v", ErrWrite, err)
	}

	for i, row := range rows {
		if err := setRow(f, sheet, firstDataRow+i, record(columns, row)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: xlsx: %v", ErrWrite, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: xlsx cell: %v", ErrWrite, err)
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("%w: xlsx row %d: %v", ErrWrite, rowNum, err)
	}
	return nil
}
