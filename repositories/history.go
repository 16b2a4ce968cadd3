package repositories

import (
	"context"
	"errors"

	"universal-summarizer/models"
)

// ErrNotFound 는 해당 id 의 요약이 히스토리에 없을 때 반환된다.
var ErrNotFound = errors.New("summary not found")

// HistoryRepository 는 요약 히스토리 저장소다.
// 파일 외의 저장소로 교체할 수 있도록 HTTP 계층은 이 인터페이스에만 의존한다.
type HistoryRepository interface {
	// Load 는 저장된 전체 요약을 삽입 순서대로 반환한다.
	Load(ctx context.Context) ([]models.SummaryRecord, error)
	// Save 는 전체 목록을 통째로 교체한다.
	Save(ctx context.Context, records []models.SummaryRecord) error
	Append(ctx context.Context, record models.SummaryRecord) error
	FindByID(ctx context.Context, id string) (*models.SummaryRecord, error)
	DeleteByID(ctx context.Context, id string) error
}
