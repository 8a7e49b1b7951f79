package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-GymConsole/internal/format"
)

type expense struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes"`
}

func columns(t *testing.T) []Column[expense] {
	f, err := format.New("en", "USD")
	require.NoError(t, err)

	return []Column[expense]{
		{Header: "Title", Field: "title"},
		{Header: "Amount", Field: "amount", Renderer: CurrencyRenderer[expense](f)},
		{Header: "Notes", Field: "notes"},
		{Header: "Large", Renderer: RenderFunc[expense](func(_ any, row expense) string {
			if row.Amount > 1000 {
				return "yes"
			}
			return "no"
		})},
	}
}

func rows() []expense {
	return []expense{
		{Title: "Rent, March", Amount: 1500, Notes: `said "urgent"`},
		{Title: "Water", Amount: 40.25, Notes: "line1\nline2"},
	}
}

func TestWriteCSV_QuotesDelimiters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, columns(t), rows()))

	assert.Contains(t, buf.String(), `"Rent, March"`)
	assert.Contains(t, buf.String(), `"said ""urgent"""`)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Title", "Amount", "Notes", "Large"}, records[0])
	assert.Equal(t, "Rent, March", records[1][0])
	assert.Contains(t, records[1][1], "1,500.00")
	assert.Equal(t, "yes", records[1][3])
	assert.Equal(t, "line1\nline2", records[2][2])
	assert.Equal(t, "no", records[2][3])
}

func TestWriteCSV_NoColumns(t *testing.T) {
	err := WriteCSV[expense](&bytes.Buffer{}, nil, rows())
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "expenses", columns(t), rows()))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	got, err := book.GetRows("expenses")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Title", got[0][0])
	assert.Equal(t, "Rent, March", got[1][0])
	assert.Equal(t, "Water", got[2][0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "members-2026-02-12.xlsx", FileName("members", FormatXLSX, now))
}
