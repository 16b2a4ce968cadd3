package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"universal-summarizer/api/trace"
	"universal-summarizer/logger"
	"universal-summarizer/metrics"
	"universal-summarizer/models"
	"universal-summarizer/parser"
	"universal-summarizer/repositories"
	"universal-summarizer/summarizer"
)

const (
	MinContentLength = 50
	MaxContentLength = 100000
	MaxURLLength     = 2000

	previewLength = 200
	untitledPage  = "Untitled Page"
)

const (
	ContentTypeText = "text"
	ContentTypeHTML = "html"
)

// SummarizeInput 은 요약 요청 1건이다.
type SummarizeInput struct {
	URL         string
	Title       string
	Content     string
	Length      string
	IsSelection bool
	// SaveHistory 가 nil 이면 저장한다.
	SaveHistory *bool
	ContentType string
}

// TextSummarizer 는 SummaryService 가 필요로 하는 요약기다.
type TextSummarizer interface {
	Summarize(ctx context.Context, in summarizer.Input) (*models.Summary, error)
}

// SummaryService 는 요청 검증, 요약 호출, 히스토리 저장을 담당한다.
type SummaryService struct {
	summarizer TextSummarizer
	history    repositories.HistoryRepository
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewSummaryService(s TextSummarizer, history repositories.HistoryRepository, m *metrics.Metrics) *SummaryService {
	return &SummaryService{
		summarizer: s,
		history:    history,
		metrics:    m,
		now:        time.Now,
	}
}

// Summarize 는 검증 → 요약 → (선택) 저장 순서로 처리한다.
// 50자 미만 본문은 모델 호출 전에 거절한다.
func (s *SummaryService) Summarize(ctx context.Context, in SummarizeInput) (*models.Summary, error) {
	requestID := trace.RequestIDFromContext(ctx)
	length, err := validateSummarizeInput(in)
	if err != nil {
		return nil, err
	}

	content := in.Content
	title := in.Title
	if strings.EqualFold(strings.TrimSpace(in.ContentType), ContentTypeHTML) {
		article, err := parser.ExtractText(in.Content, in.URL)
		if err != nil {
			logger.WarnWithFields("failed to extract text from html", logger.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return nil, invalid("Could not extract readable text from the submitted HTML")
		}
		content = article.Text
		if strings.TrimSpace(title) == "" {
			title = article.Title
		}
	}

	logger.InfoWithFields("summarize requested", logger.Fields{
		"request_id":    requestID,
		"url":           in.URL,
		"length":        string(length),
		"content_chars": utf8.RuneCountInString(content),
		"save_history":  in.SaveHistory == nil || *in.SaveHistory,
		"is_selection":  in.IsSelection,
	})

	if utf8.RuneCountInString(content) < MinContentLength {
		logger.WarnWithFields("content too short for summarization", logger.Fields{"request_id": requestID})
		return nil, invalid("Content is too short for summarization (minimum %d characters)", MinContentLength)
	}

	summary, err := s.summarizer.Summarize(ctx, summarizer.Input{
		Title:       title,
		Content:     content,
		Length:      length,
		IsSelection: in.IsSelection,
	})
	if err != nil {
		var missing *summarizer.MissingFieldsError
		if errors.As(err, &missing) {
			return nil, err
		}
		return nil, fmt.Errorf("error calling Gemini API: %w", err)
	}

	if in.SaveHistory != nil && !*in.SaveHistory {
		return summary, nil
	}

	record := s.newRecord(in.URL, title, content, length, *summary)
	logger.InfoWithFields("saving summary to history", logger.Fields{"request_id": requestID, "id": record.ID})
	err = s.history.Append(ctx, record)
	s.metrics.ObserveHistorySave(err)
	if err != nil {
		logger.ErrorWithFields("failed to save summary to history", logger.Fields{
			"request_id": requestID,
			"id":         record.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to save summary to history: %w", err)
	}
	s.verifySaved(ctx, requestID, record.ID)

	return summary, nil
}

func validateSummarizeInput(in SummarizeInput) (models.SummaryLength, error) {
	if strings.TrimSpace(in.Content) == "" {
		return "", invalid("Content cannot be empty")
	}
	if utf8.RuneCountInString(in.Content) > MaxContentLength {
		return "", invalid("Content is too long (maximum 100,000 characters)")
	}
	if strings.TrimSpace(in.URL) == "" {
		return "", invalid("URL cannot be empty")
	}
	if utf8.RuneCountInString(in.URL) > MaxURLLength {
		return "", invalid("URL is too long")
	}
	switch strings.ToLower(strings.TrimSpace(in.ContentType)) {
	case "", ContentTypeText, ContentTypeHTML:
	default:
		return "", invalid("content_type must be one of: text, html")
	}
	length, err := models.ParseSummaryLength(in.Length)
	if err != nil {
		return "", invalid("Length must be one of: short, medium, long")
	}
	return length, nil
}

func (s *SummaryService) newRecord(url, title, content string, length models.SummaryLength, summary models.Summary) models.SummaryRecord {
	if strings.TrimSpace(title) == "" {
		title = untitledPage
	}
	return models.SummaryRecord{
		ID:             uuid.NewString(),
		URL:            url,
		Title:          title,
		Summary:        summary,
		CreatedAt:      models.NewTimestamp(s.now()),
		Length:         length,
		ContentPreview: contentPreview(content),
	}
}

func contentPreview(content string) string {
	rs := []rune(content)
	if len(rs) <= previewLength {
		return content
	}
	return string(rs[:previewLength]) + "..."
}

// verifySaved 는 저장 직후 다시 읽어 레코드가 있는지 확인한다. 결과는 로그로만 남긴다.
func (s *SummaryService) verifySaved(ctx context.Context, requestID, id string) {
	if _, err := s.history.FindByID(ctx, id); err != nil {
		logger.ErrorWithFields("summary not found in saved file", logger.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		})
		return
	}
	logger.DebugWithFields("verified summary is in saved file", logger.Fields{"request_id": requestID, "id": id})
}
