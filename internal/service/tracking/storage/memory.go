package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
)

// MemoryStore 프로세스 메모리에 레코드를 보관하는 저장소입니다. 재시작 시 데이터가 유지되지 않습니다.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*contract.TrackingRecord
}

var _ contract.RecordStore = (*MemoryStore)(nil)

// NewMemoryStore 빈 메모리 저장소를 생성합니다.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*contract.TrackingRecord)}
}

func (s *MemoryStore) Save(_ context.Context, r *contract.TrackingRecord) (*contract.TrackingRecord, error) {
	if err := validateRecord(r); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[r.TrackingID] = r.Clone()

	return r.Clone(), nil
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]*contract.TrackingRecord, error) {
	return s.FindByFilters(ctx, contract.RecordFilter{})
}

func (s *MemoryStore) FindByFilters(_ context.Context, f contract.RecordFilter) ([]*contract.TrackingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*contract.TrackingRecord, 0, len(s.records))
	for _, r := range s.records {
		if f.Match(r) {
			result = append(result, r.Clone())
		}
	}
	sortByTrackingID(result)

	return result, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records), nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func validateRecord(r *contract.TrackingRecord) error {
	if r == nil {
		return ErrNilRecord
	}
	if r.TrackingID == "" {
		return ErrEmptyTrackingID
	}
	return nil
}

func sortByTrackingID(records []*contract.TrackingRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].TrackingID < records[j].TrackingID
	})
}
