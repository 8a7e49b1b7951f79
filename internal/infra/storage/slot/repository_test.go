package slot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

type countingScanner struct{ targets int }

func (s *countingScanner) Scan(dest ...interface{}) error {
	s.targets = len(dest)
	return nil
}

func TestGetByIDQuery_BookedCountsActiveBookings(t *testing.T) {
	query, args, err := getByIDQuery("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", false)
	require.NoError(t, err)

	assert.Contains(t, query, "SUM(b.participants)")
	assert.Contains(t, query, "b.slot_id = s.id")
	assert.Contains(t, query, "b.status <> 'cancelled'")
	assert.Contains(t, query, "FROM slots s WHERE s.id = $1")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"}, args)
}

func TestGetByIDQuery_LocksOnlySlotRow(t *testing.T) {
	query, _, err := getByIDQuery("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", true)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "FOR UPDATE OF s"), query)
}

func TestListQuery_Filters(t *testing.T) {
	query, args, err := listQuery(Filter{
		From:     "2026-02-01",
		To:       "2026-02-28",
		BranchID: ptr.Ptr("north"),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "s.slot_date >= $1")
	assert.Contains(t, query, "s.slot_date <= $2")
	assert.Contains(t, query, "s.branch_id = $3")
	assert.Contains(t, query, "ORDER BY s.slot_date ASC, s.start_time ASC")
	assert.Equal(t, []interface{}{domain.CalendarDate("2026-02-01"), domain.CalendarDate("2026-02-28"), "north"}, args)
}

func TestListQuery_NoFilter(t *testing.T) {
	query, args, err := listQuery(Filter{})
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestScanSlot_TargetsFollowColumns(t *testing.T) {
	s := &countingScanner{}
	_, err := scanSlot(s)
	require.NoError(t, err)

	assert.Equal(t, len(selectColumns), s.targets)
}
