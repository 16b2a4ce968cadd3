package summarizer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universal-summarizer/metrics"
	"universal-summarizer/models"
	"universal-summarizer/summarizer"
)

func TestBuildPromptDescribesSource(t *testing.T) {
	p := summarizer.BuildPrompt(summarizer.Input{
		Content:     "body text",
		Length:      models.LengthLong,
		IsSelection: true,
	})

	assert.Contains(t, p, "following selected text:")
	assert.Contains(t, p, "Title: Unknown")
	assert.Contains(t, p, "minimum length of 600 words")
	assert.Contains(t, p, `"keyPoints"`)
	assert.Contains(t, p, "body text")
}

func TestBuildPromptLengthTiers(t *testing.T) {
	cases := map[models.SummaryLength]string{
		models.LengthShort:  "100 words",
		models.LengthMedium: "200 words",
		models.LengthLong:   "600 words",
	}
	for length, want := range cases {
		p := summarizer.BuildPrompt(summarizer.Input{Title: "Page", Content: "x", Length: length})
		assert.Contains(t, p, want, length)
		assert.Contains(t, p, "following web content:")
		assert.Contains(t, p, "Title: Page")
	}
}

func TestParseSummaryStrict(t *testing.T) {
	raw := "Here you go:\n```json\n{\"title\": \"Go\", \"main\": \"A language.\", \"keyPoints\": [\"fast\", \"simple\"]}\n```"

	s, outcome, err := summarizer.ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, summarizer.OutcomeStrict, outcome)
	assert.Equal(t, "Go", s.Title)
	assert.Equal(t, "A language.", s.Main)
	assert.Equal(t, []string{"fast", "simple"}, s.KeyPoints)
}

func TestParseSummaryRepairsSingleQuotes(t *testing.T) {
	raw := `{'title': 'Gophers', 'main': 'Gophers dig tunnels.', 'keyPoints': ['dig', 'eat roots']}`

	s, outcome, err := summarizer.ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, summarizer.OutcomeRepaired, outcome)
	assert.Equal(t, &models.Summary{
		Title:     "Gophers",
		Main:      "Gophers dig tunnels.",
		KeyPoints: []string{"dig", "eat roots"},
	}, s)
}

func TestParseSummaryRepairsCurlyQuotes(t *testing.T) {
	raw := `{“title”: “T”, “main”: “M”}`

	s, outcome, err := summarizer.ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, summarizer.OutcomeRepaired, outcome)
	assert.Equal(t, "T", s.Title)
	assert.Equal(t, "M", s.Main)
}

func TestParseSummaryFallbackForPlainText(t *testing.T) {
	raw := strings.Repeat("가", 600)

	s, outcome, err := summarizer.ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, summarizer.OutcomeFallback, outcome)
	assert.Equal(t, "Summary", s.Title)
	assert.Equal(t, strings.Repeat("가", 500), s.Main)
	assert.Equal(t, []string{"Unable to extract structured data from the response"}, s.KeyPoints)
}

func TestParseSummaryFallbackForUnrepairableJSON(t *testing.T) {
	raw := `{"title": "It's broken", "main": unquoted}`

	s, outcome, err := summarizer.ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, summarizer.OutcomeFallback, outcome)
	assert.Equal(t, raw, s.Main)
}

func TestParseSummaryMissingFields(t *testing.T) {
	_, _, err := summarizer.ParseSummary(`{"main": "only the body"}`)

	var missing *summarizer.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"title"}, missing.Fields)
	assert.EqualError(t, err, "missing required fields in summary: title")
}

func TestSummarizeUsesGenerator(t *testing.T) {
	var gotPrompt string
	gen := summarizer.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return `{"title": "T", "main": "M", "keyPoints": ["k"]}`, nil
	})

	s, err := summarizer.New(gen, metrics.New()).Summarize(context.Background(), summarizer.Input{
		Title:   "Page",
		Content: "content to summarize",
		Length:  models.LengthShort,
	})
	require.NoError(t, err)
	assert.Equal(t, "T", s.Title)
	assert.Contains(t, gotPrompt, "content to summarize")
}

func TestSummarizePropagatesGeneratorError(t *testing.T) {
	gen := summarizer.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", summarizer.ErrEmptyResponse
	})

	_, err := summarizer.New(gen, nil).Summarize(context.Background(), summarizer.Input{Content: "x"})
	assert.True(t, errors.Is(err, summarizer.ErrEmptyResponse))
}
