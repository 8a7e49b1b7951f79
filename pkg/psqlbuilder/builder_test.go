package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "date").
		From("slots").
		Where(squirrel.Eq{"branch_id": "b-1"}).
		Where(squirrel.GtOrEq{"date": "2026-02-01"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, date FROM slots WHERE branch_id = $1 AND date >= $2", query)
	assert.Equal(t, []interface{}{"b-1", "2026-02-01"}, args)
}

func TestDelete_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Delete("bookings").Where(squirrel.Eq{"id": "x"}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookings WHERE id = $1", query)
	assert.Equal(t, []interface{}{"x"}, args)
}
