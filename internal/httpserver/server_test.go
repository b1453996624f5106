package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wrdl/internal/store"
)

func seeded(t *testing.T) (*Server, []store.Result) {
	t.Helper()
	st := store.NewMemoryStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []store.Result{
		{Index: 0, Word: "CIGAR", Attempts: 3, Won: true, Grid: "⬛⬛⬛⬛⬛\n🟩⬛🟨⬛⬛\n🟩🟩🟩🟩🟩", PlayedAt: base},
		{Index: 1, Word: "REBUT", Attempts: 6, Won: false, Grid: "⬛⬛⬛⬛⬛", PlayedAt: base.Add(time.Hour)},
		{Index: 2, Word: "SISSY", Attempts: 1, Won: true, Grid: "🟩🟩🟩🟩🟩", PlayedAt: base.Add(2 * time.Hour)},
	}
	for i := range in {
		require.NoError(t, st.RecordResult(context.Background(), &in[i]))
	}
	return New(st, zerolog.Nop()), in
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := seeded(t)
	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestStats(t *testing.T) {
	s, _ := seeded(t)
	rec := get(t, s, "/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var st store.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 3, st.Played)
	assert.Equal(t, 2, st.Wins)
	assert.Equal(t, 66, st.WinPercent)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 1, st.MaxStreak)
	assert.Equal(t, [6]int{1, 0, 1, 0, 0, 0}, st.Distribution)
}

func TestResults(t *testing.T) {
	s, _ := seeded(t)

	var all []store.Result
	rec := get(t, s, "/results")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
	assert.Equal(t, "SISSY", all[0].Word, "newest first")

	var limited []store.Result
	rec = get(t, s, "/results?limit=2")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &limited))
	assert.Len(t, limited, 2)

	for _, bad := range []string{"0", "-1", "ten"} {
		rec = get(t, s, "/results?limit="+bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
		assert.JSONEq(t, `{"error":"bad_limit"}`, rec.Body.String())
	}
}

func TestShare(t *testing.T) {
	s, in := seeded(t)

	rec := get(t, s, "/results/"+strconv.FormatInt(in[0].ID, 10)+"/share")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Wordle 1 3/6\n\n⬛⬛⬛⬛⬛\n🟩⬛🟨⬛⬛\n🟩🟩🟩🟩🟩\n", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, s, "/results/999/share").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/results/abc/share").Code)
}

func TestNotFoundIsJSON(t *testing.T) {
	s, _ := seeded(t)
	rec := get(t, s, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestShutdownBeforeStart(t *testing.T) {
	s, _ := seeded(t)
	assert.NoError(t, s.Shutdown(context.Background()))
}
