package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestSaveAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save("ana@local", "pergunta 1", "resposta 1"))
	require.NoError(t, s.Save("ana@local", "pergunta 2", "resposta 2"))
	require.NoError(t, s.Save("bruno@local", "pergunta 3", "resposta 3"))

	records, err := s.Recent("ana@local", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "pergunta 2", records[0].Question)
	assert.Equal(t, "pergunta 1", records[1].Question)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestRecentRespectsLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save("ana@local", "q", "a"))
	}

	records, err := s.Recent("ana@local", 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRecentUnknownUser(t *testing.T) {
	s := openTestStore(t)
	records, err := s.Recent("ninguem@local", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func seed(t *testing.T, s *Store, user string, createdAt time.Time) {
	t.Helper()
	rec := Record{User: user, Question: "q", Answer: "a", CreatedAt: createdAt}
	require.NoError(t, s.db.Create(&rec).Error)
}

func TestFilteredByUserAndDay(t *testing.T) {
	s := openTestStore(t)
	loc := time.UTC
	seed(t, s, "ana@local", time.Date(2026, 8, 10, 9, 30, 0, 0, loc))
	seed(t, s, "ana@local", time.Date(2026, 8, 12, 23, 59, 0, 0, loc))
	seed(t, s, "ana@local", time.Date(2026, 8, 15, 8, 0, 0, 0, loc))
	seed(t, s, "bruno@local", time.Date(2026, 8, 12, 10, 0, 0, 0, loc))

	start := time.Date(2026, 8, 11, 17, 45, 0, 0, loc) // time of day is ignored
	end := time.Date(2026, 8, 12, 0, 0, 0, 0, loc)

	records, err := s.Filtered(Filter{User: "ana@local", Start: &start, End: &end})
	require.NoError(t, err)

	// The end day is inclusive at day granularity: the 23:59 record on the
	// 12th is in.
	require.Len(t, records, 1)
	assert.Equal(t, "ana@local", records[0].User)
	assert.Equal(t, 12, records[0].CreatedAt.Day())
}

func TestFilteredOpenBounds(t *testing.T) {
	s := openTestStore(t)
	loc := time.UTC
	seed(t, s, "ana@local", time.Date(2026, 8, 10, 9, 0, 0, 0, loc))
	seed(t, s, "bruno@local", time.Date(2026, 8, 12, 9, 0, 0, 0, loc))

	records, err := s.Filtered(Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	start := time.Date(2026, 8, 11, 0, 0, 0, 0, loc)
	records, err = s.Filtered(Filter{Start: &start})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bruno@local", records[0].User)
}

func TestFilteredDefaultLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 60; i++ {
		require.NoError(t, s.Save("ana@local", "q", "a"))
	}

	records, err := s.Filtered(Filter{User: "ana@local"})
	require.NoError(t, err)
	assert.Len(t, records, 50)
}

func TestUsers(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save("carla@local", "q", "a"))
	require.NoError(t, s.Save("ana@local", "q", "a"))
	require.NoError(t, s.Save("ana@local", "q2", "a2"))

	users, err := s.Users()
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@local", "carla@local"}, users)
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("/nonexistent-dir/sub/qa.db", zap.NewNop())
	assert.Error(t, err)
}
