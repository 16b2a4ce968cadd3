package summarizer

import (
	"context"
	"time"
	"unicode/utf8"

	"universal-summarizer/api/trace"
	"universal-summarizer/logger"
	"universal-summarizer/metrics"
	"universal-summarizer/models"
)

// Input 은 요약 요청 1건의 프롬프트 재료다.
type Input struct {
	Title       string
	Content     string
	Length      models.SummaryLength
	IsSelection bool
}

// Summarizer 는 프롬프트 생성, 모델 호출, 응답 복원을 묶는다.
type Summarizer struct {
	gen     Generator
	metrics *metrics.Metrics
}

func New(gen Generator, m *metrics.Metrics) *Summarizer {
	return &Summarizer{gen: gen, metrics: m}
}

// Summarize 는 Gemini 응답을 구조화 요약으로 변환한다.
// 모델 호출 실패와 필수 필드 누락만 에러이며, 해석 불가능한 응답은 fallback 요약이 된다.
func (s *Summarizer) Summarize(ctx context.Context, in Input) (*models.Summary, error) {
	requestID := trace.RequestIDFromContext(ctx)
	prompt := BuildPrompt(in)
	logger.DebugWithFields("generated prompt", logger.Fields{
		"request_id":   requestID,
		"length":       string(in.Length),
		"prompt_chars": utf8.RuneCountInString(prompt),
	})

	start := time.Now()
	raw, err := s.gen.Generate(ctx, prompt)
	s.metrics.ObserveLLM(time.Since(start), err)
	if err != nil {
		logger.ErrorWithFields("llm call failed", logger.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, err
	}
	logger.InfoWithFields("received llm response", logger.Fields{
		"request_id":     requestID,
		"latency_ms":     time.Since(start).Milliseconds(),
		"response_chars": utf8.RuneCountInString(raw),
	})

	summary, outcome, err := ParseSummary(raw)
	s.metrics.ObserveParse(string(outcome))
	if err != nil {
		logger.ErrorWithFields("llm response is missing required fields", logger.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, err
	}

	fields := logger.Fields{"request_id": requestID, "outcome": string(outcome)}
	if outcome == OutcomeFallback {
		fields["response_excerpt"] = truncate(raw, 200)
		logger.WarnWithFields("using fallback summary format", fields)
	} else {
		logger.InfoWithFields("parsed llm response", fields)
	}
	return summary, nil
}
