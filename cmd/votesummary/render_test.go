package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"gopkg.in/yaml.v3"
)

func sampleSummary() *ports.Summary {
	return &ports.Summary{
		GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Options: []ports.SummaryOption{
			{Name: "Chickpea Curry", Votes: 3},
			{Name: "Mushroom Soup", Votes: 1},
		},
		TotalVotes: 4,
		RecentSuggestions: []domain.RecentSuggestion{
			{Date: "2024-05-01", Text: "More spice please"},
		},
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, sampleSummary(), "text"))

	out := buf.String()
	assert.Contains(t, out, "Generated at: 2024-05-01T12:00:00Z")
	assert.NotContains(t, out, "Poll updated at")
	assert.Contains(t, out, "Chickpea Curry  3      75.0%")
	assert.Contains(t, out, "Total           4")
	assert.Contains(t, out, "2024-05-01  More spice please")
}

func TestRender_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	summary := &ports.Summary{Options: []ports.SummaryOption{{Name: "Soup"}}}
	require.NoError(t, render(&buf, summary, ""))
	assert.Contains(t, buf.String(), "0.0%")
	assert.Contains(t, buf.String(), "No suggestions yet.")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, sampleSummary(), "json"))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, float64(4), out["total_votes"])
	assert.Nil(t, out["config_updated_at"])
	assert.Len(t, out["options"], 2)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, sampleSummary(), "yaml"))

	var out struct {
		TotalVotes int64 `yaml:"total_votes"`
		Options    []struct {
			Name  string `yaml:"name"`
			Votes int64  `yaml:"votes"`
		} `yaml:"options"`
		RecentSuggestions []struct {
			Date string `yaml:"date"`
			Text string `yaml:"text"`
		} `yaml:"recent_suggestions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, int64(4), out.TotalVotes)
	assert.Equal(t, "Chickpea Curry", out.Options[0].Name)
	assert.Equal(t, "More spice please", out.RecentSuggestions[0].Text)
}

func TestRender_UnknownFormat(t *testing.T) {
	assert.Error(t, render(&bytes.Buffer{}, sampleSummary(), "xml"))
}
