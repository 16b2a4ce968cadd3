package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"universal-summarizer/logger"
	"universal-summarizer/models"
)

const (
	backupSuffix  = ".bak"
	corruptSuffix = ".corrupt"
	tempSuffix    = ".tmp"
)

// ErrEmptyAfterSave 는 rename 이후 대상 파일이 비어 있는 경우다.
var ErrEmptyAfterSave = errors.New("history file has zero size after save")

// FileHistoryRepository 는 하나의 JSON 배열 파일에 히스토리를 보관한다.
// 저장은 임시 파일 + fsync + rename 으로 원자적으로 교체하지만
// 동시에 실행되는 두 저장 사이의 잠금은 없다(마지막 쓰기가 이긴다).
type FileHistoryRepository struct {
	path string
}

var _ HistoryRepository = (*FileHistoryRepository)(nil)

func NewFileHistoryRepository(path string) *FileHistoryRepository {
	return &FileHistoryRepository{path: path}
}

// Path returns the history file location.
func (r *FileHistoryRepository) Path() string { return r.path }

func (r *FileHistoryRepository) BackupPath() string  { return r.path + backupSuffix }
func (r *FileHistoryRepository) CorruptPath() string { return r.path + corruptSuffix }

// Load 는 파일 전체를 읽는다.
// 파일이 없으면 빈 배열로 생성하고, 파싱 불가 또는 배열이 아니면 .corrupt 로 백업한 뒤 초기화한다.
func (r *FileHistoryRepository) Load(ctx context.Context) ([]models.SummaryRecord, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.InfoWithFields("history file does not exist, creating new file", logger.Fields{"path": r.path})
		if err := r.reset(); err != nil {
			return nil, err
		}
		return []models.SummaryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	records, skipped, err := decodeRecords(data)
	if err != nil {
		logger.ErrorWithFields("history file is corrupt, creating backup and resetting", logger.Fields{
			"path":   r.path,
			"backup": r.CorruptPath(),
			"error":  err.Error(),
		})
		if err := copyFile(r.path, r.CorruptPath()); err != nil {
			return nil, fmt.Errorf("backup corrupt history file: %w", err)
		}
		if err := r.reset(); err != nil {
			return nil, err
		}
		return []models.SummaryRecord{}, nil
	}
	if skipped > 0 {
		// 다음 저장에서 빠지는 레코드가 남도록 원본은 .corrupt 로 보관한다.
		logger.WarnWithFields("skipped unreadable history records", logger.Fields{
			"path":    r.path,
			"backup":  r.CorruptPath(),
			"skipped": skipped,
		})
		if err := copyFile(r.path, r.CorruptPath()); err != nil {
			return nil, fmt.Errorf("backup history file: %w", err)
		}
	}

	logger.DebugWithFields("loaded history", logger.Fields{"path": r.path, "count": len(records)})
	return records, nil
}

// decodeRecords 는 JSON 문법 오류나 배열이 아닌 경우에만 에러를 반환한다.
// 읽을 수 없는 원소는 건너뛰고 그 개수를 돌려준다.
func decodeRecords(data []byte) ([]models.SummaryRecord, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, 0, errors.New("history file does not contain a JSON array")
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, 0, err
	}

	records := make([]models.SummaryRecord, 0, len(raws))
	skipped := 0
	for i, raw := range raws {
		rec, err := decodeRecord(raw)
		if err != nil {
			logger.WarnWithFields("skipping history record", logger.Fields{"index": i, "error": err.Error()})
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// reset 은 대상 파일을 빈 배열로 교체한다. 백업(.bak)은 만들지 않는다.
func (r *FileHistoryRepository) reset() error {
	if err := r.writeAtomic([]byte("[]")); err != nil {
		return fmt.Errorf("reset history file: %w", err)
	}
	return nil
}

// Save 는 기존 파일을 .bak 으로 복사한 뒤 전체 목록을 원자적으로 기록한다.
func (r *FileHistoryRepository) Save(ctx context.Context, records []models.SummaryRecord) error {
	if records == nil {
		records = []models.SummaryRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if _, err := os.Stat(r.path); err == nil {
		if err := copyFile(r.path, r.BackupPath()); err != nil {
			return fmt.Errorf("backup history file: %w", err)
		}
		logger.DebugWithFields("created backup of history file", logger.Fields{"backup": r.BackupPath()})
	}

	if err := r.writeAtomic(data); err != nil {
		return err
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return fmt.Errorf("history file missing after save: %w", err)
	}
	if info.Size() == 0 {
		return ErrEmptyAfterSave
	}

	logger.InfoWithFields("saved history", logger.Fields{
		"path":       r.path,
		"count":      len(records),
		"size_bytes": info.Size(),
	})
	return nil
}

// writeAtomic 은 <path>.tmp 에 쓰고 fsync 한 뒤 대상 위치로 rename 한다.
func (r *FileHistoryRepository) writeAtomic(data []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp := r.path + tempSuffix
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	// os.Rename 은 Windows 에서도 기존 파일을 교체한다.
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace history file: %w", err)
	}
	syncDir(dir)
	return nil
}

// syncDir 은 rename 결과가 디스크에 반영되도록 디렉터리를 fsync 한다. 실패는 무시한다.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

// copyFile 은 내용과 권한, 수정 시각을 유지해 복사한다.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// Append 는 load → append → save 를 수행한다.
func (r *FileHistoryRepository) Append(ctx context.Context, record models.SummaryRecord) error {
	records, err := r.Load(ctx)
	if err != nil {
		return err
	}
	records = append(records, record)
	return r.Save(ctx, records)
}

func (r *FileHistoryRepository) FindByID(ctx context.Context, id string) (*models.SummaryRecord, error) {
	records, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}

// DeleteByID 는 id 가 일치하는 요약만 제거하고 저장한다.
func (r *FileHistoryRepository) DeleteByID(ctx context.Context, id string) error {
	records, err := r.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.SummaryRecord, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	if err := r.Save(ctx, kept); err != nil {
		return fmt.Errorf("save history after deletion: %w", err)
	}
	return nil
}
