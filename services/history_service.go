package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"universal-summarizer/api/trace"
	"universal-summarizer/logger"
	"universal-summarizer/metrics"
	"universal-summarizer/models"
	"universal-summarizer/repositories"
)

// HistoryService 는 저장된 요약 조회와 삭제를 담당한다.
type HistoryService struct {
	history repositories.HistoryRepository
	metrics *metrics.Metrics
}

func NewHistoryService(history repositories.HistoryRepository, m *metrics.Metrics) *HistoryService {
	return &HistoryService{history: history, metrics: m}
}

// List 는 created_at 최신순으로 정렬한 전체 히스토리를 반환한다.
// 저장소를 읽지 못하면 에러 대신 빈 목록을 반환한다.
func (s *HistoryService) List(ctx context.Context) []models.SummaryRecord {
	records, err := s.history.Load(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to load summary history", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
		return []models.SummaryRecord{}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt.Time)
	})
	return records
}

// Get 은 id 에 해당하는 요약을 반환한다. 없으면 repositories.ErrNotFound 를 감싼 에러다.
func (s *HistoryService) Get(ctx context.Context, id string) (*models.SummaryRecord, error) {
	rec, err := s.history.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnWithFields("summary not found", logger.Fields{"id": id})
		}
		return nil, err
	}
	return rec, nil
}

// Delete 는 id 가 일치하는 요약 1건만 제거한다.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	err := s.history.DeleteByID(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		logger.WarnWithFields("summary not found for deletion", logger.Fields{"id": id})
		return err
	case err != nil:
		s.metrics.ObserveHistorySave(err)
		logger.ErrorWithFields("failed to delete summary", logger.Fields{"id": id, "error": err.Error()})
		return fmt.Errorf("failed to save summaries after deletion: %w", err)
	}
	s.metrics.ObserveHistorySave(nil)
	logger.InfoWithFields("deleted summary", logger.Fields{"id": id})
	return nil
}
