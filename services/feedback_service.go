package services

import (
	"context"
	"strings"

	"universal-summarizer/api/trace"
	"universal-summarizer/logger"
)

// FeedbackInput 은 요약에 대한 사용자 평가다.
type FeedbackInput struct {
	URL     string
	Rating  int
	Comment string
}

// FeedbackService 는 피드백을 로그로만 남기며 저장하지 않는다.
type FeedbackService struct{}

func NewFeedbackService() *FeedbackService {
	return &FeedbackService{}
}

func (s *FeedbackService) Submit(ctx context.Context, in FeedbackInput) error {
	if strings.TrimSpace(in.URL) == "" {
		return invalid("URL cannot be empty")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return invalid("Rating must be between 1 and 5")
	}

	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"url":        in.URL,
		"rating":     in.Rating,
	}
	if c := strings.TrimSpace(in.Comment); c != "" {
		fields["comment"] = c
	}
	logger.InfoWithFields("received feedback", fields)
	return nil
}
