package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
)

func TestSuggestionOncePerDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	status, _ := app.do(t, http.MethodPost, "/api/suggestion", map[string]string{"device_id": "X", "text": "More spice please"})
	require.Equal(t, http.StatusOK, status)

	status, body := app.do(t, http.MethodPost, "/api/suggestion", map[string]string{"device_id": "X", "text": "More spice please"})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Only one suggestion per day is allowed", body["error"])

	boot := app.bootstrap(t, "X")
	assert.Equal(t, false, boot["suggestionAllowed"])
	assert.Equal(t, []any{map[string]any{"date": domain.DayKey(time.Now()), "text": "More spice please"}}, boot["recentSuggestions"])
}

func TestRecentSuggestionsNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Yesterday's suggestion from the same device does not block today.
	yesterday := time.Now().Add(-24 * time.Hour)
	_, err := app.DB.ExecContext(context.Background(),
		`INSERT INTO suggestions (id, device_id, day_key, suggestion_text, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.Must(uuid.NewV7()), "X", domain.DayKey(yesterday), "Yesterday", yesterday,
	)
	require.NoError(t, err)

	for i, text := range []string{"First", "Second", "Third"} {
		device := []string{"X", "Y", "Z"}[i]
		status, _ := app.do(t, http.MethodPost, "/api/suggestion", map[string]string{"device_id": device, "text": text})
		require.Equal(t, http.StatusOK, status)
	}

	recent := app.bootstrap(t, "")["recentSuggestions"].([]any)
	require.Len(t, recent, 4)
	assert.Equal(t, "Third", recent[0].(map[string]any)["text"])
	assert.Equal(t, "Yesterday", recent[3].(map[string]any)["text"])
}
