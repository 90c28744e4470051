package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/darkkaiser/tracking-server/pkg/concurrency"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
)

// component 저장소 로깅용 컴포넌트 이름
const component = "tracking.storage"

// defaultDataDirectory 레코드 파일을 저장할 기본 디렉토리 이름입니다.
const defaultDataDirectory = "data"

const tempFilePattern = "record-*.tmp"

// staleTempFileAge 이 시간보다 오래된 임시 파일은 이전 실행의 잔존물로 보고 삭제합니다.
const staleTempFileAge = time.Hour

// FileStore 레코드 하나를 JSON 파일 하나로 보관하는 저장소입니다.
//
// [파일 구조]
//   - record-{송장번호}-{hash}.json: 레코드 본문
//   - record-*.tmp: 저장 중에 생성되는 임시 파일
type FileStore struct {
	baseDir string

	// locks 같은 레코드 파일에 대한 동시 쓰기를 막습니다.
	locks *concurrency.KeyedMutex

	closed atomic.Bool
	wg     sync.WaitGroup
}

var _ contract.RecordStore = (*FileStore)(nil)

// NewFileStore dir 디렉토리를 사용하는 파일 저장소를 생성합니다.
// dir이 비어 있으면 "data"를 사용하며, 상대 경로는 절대 경로로 변환합니다.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrDirectoryAccessFailed(err, dir)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex(),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"base_dir": s.baseDir,
					"panic":    r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		s.cleanupStaleTempFiles()
	}()

	return s, nil
}

// Dir 레코드 파일이 저장되는 절대 경로를 반환합니다.
func (s *FileStore) Dir() string {
	return s.baseDir
}

func (s *FileStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	threshold := time.Now().Add(-staleTempFileAge)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if matched, _ := filepath.Match(tempFilePattern, name); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패")
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"file": fullPath,
		}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
	}
}

// Save 레코드를 원자적으로 파일에 기록합니다. 같은 송장번호의 파일이 있으면 교체합니다.
func (s *FileStore) Save(_ context.Context, r *contract.TrackingRecord) (*contract.TrackingRecord, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	if err := validateRecord(r); err != nil {
		return nil, err
	}

	filename, err := s.resolveSafePath(r.TrackingID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return nil, NewErrJSONMarshalFailed(err)
	}

	// 대소문자를 구분하지 않는 파일 시스템을 위해 락 키는 소문자로 정규화한다.
	key := strings.ToLower(filename)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	if err := s.writeAtomic(filename, data); err != nil {
		return nil, err
	}

	return r.Clone(), nil
}

func (s *FileStore) FindAll(ctx context.Context) ([]*contract.TrackingRecord, error) {
	return s.FindByFilters(ctx, contract.RecordFilter{})
}

// FindByFilters 모든 레코드 파일을 읽어 조건에 맞는 레코드를 반환합니다.
func (s *FileStore) FindByFilters(ctx context.Context, f contract.RecordFilter) ([]*contract.TrackingRecord, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, NewErrFileReadFailed(err)
	}

	result := make([]*contract.TrackingRecord, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isRecordFilename(entry.Name()) {
			continue
		}

		r, err := s.readRecord(entry.Name())
		if err != nil {
			return nil, err
		}
		if r == nil {
			continue
		}
		if f.Match(r) {
			result = append(result, r)
		}
	}
	sortByTrackingID(result)

	return result, nil
}

func (s *FileStore) Count(_ context.Context) (int, error) {
	if s.closed.Load() {
		return 0, ErrStoreClosed
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return 0, NewErrFileReadFailed(err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && isRecordFilename(entry.Name()) {
			count++
		}
	}
	return count, nil
}

// Close 백그라운드 정리 작업이 끝날 때까지 기다립니다.
func (s *FileStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.wg.Wait()
	return nil
}

// readRecord 레코드 파일 하나를 읽습니다. 목록 조회와 삭제 사이에 파일이 사라졌으면 nil을 반환합니다.
func (s *FileStore) readRecord(name string) (*contract.TrackingRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewErrFileReadFailed(err)
	}

	var r contract.TrackingRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, NewErrJSONUnmarshalFailed(err, name)
	}
	return &r, nil
}

// resolveSafePath 송장번호로 만든 파일 경로가 저장소 디렉토리를 벗어나지 않는지 검증합니다.
func (s *FileStore) resolveSafePath(trackingID string) (string, error) {
	filename := recordFilename(trackingID)
	cleanPath := filepath.Clean(filepath.Join(s.baseDir, filename))

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil || strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		applog.WithComponentAndFields(component, applog.Fields{
			"tracking_id": trackingID,
			"filename":    filename,
			"base_dir":    s.baseDir,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 임시 파일에 쓰고 fsync한 뒤 rename으로 교체합니다.
func (s *FileStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrFileWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 지울 수 없으므로 Close가 Remove보다 먼저 실행되어야 한다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrFileWriteFailed(err, "파일 쓰기")
	}
	if err := tmpFile.Sync(); err != nil {
		return NewErrFileWriteFailed(err, "디스크 동기화")
	}
	if err := tmpFile.Close(); err != nil {
		return NewErrFileWriteFailed(err, "파일 닫기")
	}
	if err := renameWithRetry(tmpPath, filename); err != nil {
		return NewErrFileWriteFailed(err, "파일 이름 변경")
	}

	// 디렉토리 엔트리 동기화는 실패해도 무시한다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 점유하는 환경을 위해 rename을 몇 차례 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(retryDelay)
	}
	return lastErr
}
