package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummaryLength(t *testing.T) {
	l, err := ParseSummaryLength("")
	require.NoError(t, err)
	assert.Equal(t, LengthMedium, l)

	l, err = ParseSummaryLength("long")
	require.NoError(t, err)
	assert.Equal(t, LengthLong, l)

	_, err = ParseSummaryLength("huge")
	assert.Error(t, err)
}

func TestTimestampReadsLegacyFormat(t *testing.T) {
	var rec SummaryRecord
	raw := `{"id":"a","url":"u","title":"t","summary":{"title":"s","main":"m"},"created_at":"2024-05-01T10:00:00.123456","length":"short","content_preview":"p"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, 2024, rec.CreatedAt.Year())
	assert.Equal(t, 123456000, rec.CreatedAt.Nanosecond())
}

func TestTimestampWritesRFC3339(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02T03:04:05Z"`, string(out))

	var back Timestamp
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Equal(ts.Time))
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}
