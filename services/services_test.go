package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"universal-summarizer/models"
	"universal-summarizer/repositories"
	"universal-summarizer/services"
	"universal-summarizer/summarizer"
)

type fakeSummarizer struct {
	calls int
	last  summarizer.Input
	out   *models.Summary
	err   error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, in summarizer.Input) (*models.Summary, error) {
	f.calls++
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

// brokenRepo 는 모든 호출에 실패하는 저장소다.
type brokenRepo struct{ err error }

func (b brokenRepo) Load(context.Context) ([]models.SummaryRecord, error) { return nil, b.err }
func (b brokenRepo) Save(context.Context, []models.SummaryRecord) error { return b.err }
func (b brokenRepo) Append(context.Context, models.SummaryRecord) error { return b.err }
func (b brokenRepo) FindByID(context.Context, string) (*models.SummaryRecord, error) {
	return nil, b.err
}
func (b brokenRepo) DeleteByID(context.Context, string) error { return b.err }

var longContent = strings.Repeat("Go is an open source programming language. ", 10)

func newFixture(t *testing.T) (*services.SummaryService, *services.HistoryService, *fakeSummarizer, *repositories.FileHistoryRepository) {
	t.Helper()
	fake := &fakeSummarizer{out: &models.Summary{Title: "T", Main: "M", KeyPoints: []string{"k"}}}
	repo := repositories.NewFileHistoryRepository(filepath.Join(t.TempDir(), "summaries.json"))
	return services.NewSummaryService(fake, repo, nil), services.NewHistoryService(repo, nil), fake, repo
}

func TestSummarizeRejectsShortContentBeforeCallingModel(t *testing.T) {
	svc, _, fake, _ := newFixture(t)

	_, err := svc.Summarize(context.Background(), services.SummarizeInput{
		URL:     "https://example.com",
		Content: strings.Repeat("a", 49),
	})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "too short")
	assert.Equal(t, 0, fake.calls)
}

func TestSummarizeValidation(t *testing.T) {
	svc, _, fake, _ := newFixture(t)
	cases := []struct {
		name string
		in   services.SummarizeInput
		want string
	}{
		{"empty content", services.SummarizeInput{URL: "u", Content: "   "}, "Content cannot be empty"},
		{"too long content", services.SummarizeInput{URL: "u", Content: strings.Repeat("a", services.MaxContentLength+1)}, "Content is too long"},
		{"empty url", services.SummarizeInput{URL: " ", Content: longContent}, "URL cannot be empty"},
		{"too long url", services.SummarizeInput{URL: strings.Repeat("u", services.MaxURLLength+1), Content: longContent}, "URL is too long"},
		{"bad length", services.SummarizeInput{URL: "u", Content: longContent, Length: "tiny"}, "Length must be one of"},
		{"bad content type", services.SummarizeInput{URL: "u", Content: longContent, ContentType: "pdf"}, "content_type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Summarize(context.Background(), tc.in)
			var verr *services.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Message, tc.want)
		})
	}
	assert.Equal(t, 0, fake.calls)
}

func TestSummarizeSavesRecord(t *testing.T) {
	svc, history, fake, _ := newFixture(t)
	content := strings.Repeat("한", 250)

	summary, err := svc.Summarize(context.Background(), services.SummarizeInput{
		URL:         "https://example.com/a",
		Content:     content,
		IsSelection: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "T", summary.Title)
	assert.Equal(t, models.LengthMedium, fake.last.Length)
	assert.True(t, fake.last.IsSelection)

	records := history.List(context.Background())
	require.Len(t, records, 1)
	rec := records[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Untitled Page", rec.Title)
	assert.Equal(t, models.LengthMedium, rec.Length)
	assert.Equal(t, strings.Repeat("한", 200)+"...", rec.ContentPreview)
	assert.Equal(t, "M", rec.Summary.Main)
}

func TestSummarizeHonoursSaveHistoryFalse(t *testing.T) {
	svc, history, _, _ := newFixture(t)
	no := false

	_, err := svc.Summarize(context.Background(), services.SummarizeInput{
		URL:         "https://example.com",
		Title:       "Title",
		Content:     longContent,
		SaveHistory: &no,
	})
	require.NoError(t, err)
	assert.Empty(t, history.List(context.Background()))
}

func TestSummarizeWrapsModelErrors(t *testing.T) {
	svc, _, fake, _ := newFixture(t)
	fake.err = summarizer.ErrEmptyResponse

	_, err := svc.Summarize(context.Background(), services.SummarizeInput{URL: "u", Content: longContent})
	require.Error(t, err)
	assert.True(t, errors.Is(err, summarizer.ErrEmptyResponse))
	assert.Contains(t, err.Error(), "error calling Gemini API")
}

func TestSummarizeKeepsMissingFieldsErrorUnwrapped(t *testing.T) {
	svc, _, fake, repo := newFixture(t)
	fake.err = &summarizer.MissingFieldsError{Fields: []string{"main"}}

	_, err := svc.Summarize(context.Background(), services.SummarizeInput{URL: "https://example.com", Content: longContent})
	require.Error(t, err)
	assert.Equal(t, "missing required fields in summary: main", err.Error())

	var missing *summarizer.MissingFieldsError
	assert.True(t, errors.As(err, &missing))

	records, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSummarizeSurfacesStorageFailure(t *testing.T) {
	fake := &fakeSummarizer{out: &models.Summary{Title: "T", Main: "M"}}
	svc := services.NewSummaryService(fake, brokenRepo{err: errors.New("disk full")}, nil)

	_, err := svc.Summarize(context.Background(), services.SummarizeInput{URL: "u", Content: longContent})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSummarizeExtractsHTML(t *testing.T) {
	svc, history, fake, _ := newFixture(t)
	html := `<html><head><title>Gopher Facts</title></head><body><article>
<p>Gophers are burrowing rodents that spend most of their lives underground in extensive tunnel systems.</p>
<p>They eat roots, tubers and other plant material that they find while digging, and rarely come above ground.</p>
<p>Their cheek pouches are fur-lined and can be turned inside out for cleaning after carrying food.</p>
</article></body></html>`

	_, err := svc.Summarize(context.Background(), services.SummarizeInput{
		URL:         "https://example.com/gophers",
		Content:     html,
		ContentType: "html",
	})
	require.NoError(t, err)
	assert.NotContains(t, fake.last.Content, "<p>")
	assert.Contains(t, fake.last.Content, "burrowing rodents")

	records := history.List(context.Background())
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Title, "Gopher")
}

func TestHistoryListSortsNewestFirst(t *testing.T) {
	_, history, _, repo := newFixture(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), []models.SummaryRecord{
		{ID: "old", CreatedAt: models.NewTimestamp(base)},
		{ID: "new", CreatedAt: models.NewTimestamp(base.Add(2 * time.Hour))},
		{ID: "mid", CreatedAt: models.NewTimestamp(base.Add(time.Hour))},
	}))

	records := history.List(context.Background())
	require.Len(t, records, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{records[0].ID, records[1].ID, records[2].ID})
}

func TestHistoryListDegradesToEmpty(t *testing.T) {
	history := services.NewHistoryService(brokenRepo{err: errors.New("permission denied")}, nil)
	records := history.List(context.Background())
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHistoryGetAndDelete(t *testing.T) {
	_, history, _, repo := newFixture(t)
	require.NoError(t, repo.Save(context.Background(), []models.SummaryRecord{{ID: "a"}, {ID: "b"}}))

	rec, err := history.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", rec.ID)

	_, err = history.Get(context.Background(), "zzz")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, history.Delete(context.Background(), "zzz"), repositories.ErrNotFound)
	require.NoError(t, history.Delete(context.Background(), "a"))

	records := history.List(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].ID)
}

func TestFeedbackValidation(t *testing.T) {
	svc := services.NewFeedbackService()

	assert.NoError(t, svc.Submit(context.Background(), services.FeedbackInput{URL: "u", Rating: 5, Comment: "great"}))

	var verr *services.ValidationError
	assert.ErrorAs(t, svc.Submit(context.Background(), services.FeedbackInput{URL: "u", Rating: 0}), &verr)
	assert.ErrorAs(t, svc.Submit(context.Background(), services.FeedbackInput{URL: "u", Rating: 6}), &verr)
	assert.ErrorAs(t, svc.Submit(context.Background(), services.FeedbackInput{Rating: 3}), &verr)
}
