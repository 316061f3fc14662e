//nolint:testpackage // White-box testing needed for internal function access
package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptxhq/ptx/internal/config"
	"github.com/ptxhq/ptx/internal/event"
	"github.com/ptxhq/ptx/internal/query"
)

func TestFilterByTimeWindowNoBoundsReturnsInput(t *testing.T) {
	events := []event.Event{event.New("src", 100)}
	out, err := filterByTimeWindow(events, "", "")
	require.NoError(t, err)
	assert.Equal(t, events, out)
}

func TestFilterByTimeWindowSinceBound(t *testing.T) {
	orig := event.Now
	defer func() { event.Now = orig }()
	fixed := time.Unix(2000, 0).UTC()
	event.Now = func() time.Time { return fixed }

	events := []event.Event{
		{Timestamp: 1000, Source: "a"},
		{Timestamp: 1900, Source: "b"},
	}
	// since=600 means "no earlier than now-600s" = 1400; only the
	// second event (1900) survives.
	out, err := filterByTimeWindow(events, "600", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].Source)
}

func TestFilterByTimeWindowUntilBound(t *testing.T) {
	orig := event.Now
	defer func() { event.Now = orig }()
	fixed := time.Unix(2000, 0).UTC()
	event.Now = func() time.Time { return fixed }

	events := []event.Event{
		{Timestamp: 1000, Source: "a"},
		{Timestamp: 1900, Source: "b"},
	}
	// until=600 means "no later than now-600s" = 1400; only the first
	// event (1000) survives.
	out, err := filterByTimeWindow(events, "", "600")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Source)
}

func TestFilterByTimeWindowRejectsInvalidDuration(t *testing.T) {
	_, err := filterByTimeWindow(nil, "not-a-duration", "")
	require.Error(t, err)
}

func TestRowHeadersOrdersGroupThenAggs(t *testing.T) {
	q := &query.Query{
		Group: []string{"host"},
		Aggs: []query.Agg{
			{Func: query.AggCount},
			{Func: query.AggSum, Field: "bytes"},
		},
	}
	assert.Equal(t, []string{"host", "count", "sum_bytes"}, rowHeaders(q))
}

func TestResolveOutputFormat(t *testing.T) {
	assert.Equal(t, "json", resolveOutputFormat("json", nil))
	cfg := config.Default()
	cfg.Defaults.Output = "yaml"
	assert.Equal(t, "yaml", resolveOutputFormat("", cfg))
	assert.Equal(t, "table", resolveOutputFormat("", config.Default()))
}
