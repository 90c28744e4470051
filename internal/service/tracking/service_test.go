package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/darkkaiser/tracking-server/internal/service/contract/mocks"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.Local)

const validCustomerID = "a1b2c3d4-e5f6-4a5b-8c9d-1e2f3a4b5c6d"

func newTestAllocator(t *testing.T, start, end int64) *idgen.Allocator {
	t.Helper()

	a, err := idgen.NewAllocator(idgen.RangeConfig{StartRange: start, EndRange: end, Padding: 4, InstanceID: "01"})
	require.NoError(t, err)
	return a
}

func newTestService(t *testing.T, allocator *idgen.Allocator, store contract.RecordStore) (*Service, *Metrics) {
	t.Helper()

	m := NewMetrics(prometheus.NewRegistry(), allocator)
	s := NewService(allocator, store, m, "")
	s.now = func() time.Time { return fixedNow }
	return s, m
}

func validRequest() contract.IssueRequest {
	return contract.IssueRequest{
		OriginCountry:      "MY",
		DestinationCountry: "SG",
		WeightKg:           "2.5",
		CustomerID:         validCustomerID,
		CustomerName:       "Test   Multiple   Spaces",
	}
}

func TestNewService_PanicsOnMissingDependencies(t *testing.T) {
	a := newTestAllocator(t, 1, 10)

	assert.Panics(t, func() { NewService(nil, storage.NewMemoryStore(), nil, "") })
	assert.Panics(t, func() { NewService(a, nil, nil, "") })
}

func TestService_NextTrackingNumber(t *testing.T) {
	s, m := newTestService(t, newTestAllocator(t, 7, 10), storage.NewMemoryStore())

	id, err := s.NextTrackingNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MY010007", id)

	id, err = s.IssueBareIdentifier(context.Background(), "MALAYSIASG")
	require.NoError(t, err)
	assert.Equal(t, "MALAYS010008", id)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.issued.WithLabelValues(issueKindBare)))
}

func TestService_CustomDefaultPrefix(t *testing.T) {
	s := NewService(newTestAllocator(t, 1, 10), storage.NewMemoryStore(), nil, "SG")

	id, err := s.NextTrackingNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SG010001", id)
}

func TestService_IssueBareIdentifier_Exhausted(t *testing.T) {
	s, m := newTestService(t, newTestAllocator(t, 1000, 1002), storage.NewMemoryStore())
	ctx := context.Background()

	for _, want := range []string{"MY011000", "MY011001", "MY011002"} {
		id, err := s.NextTrackingNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	for range 2 {
		id, err := s.NextTrackingNumber(ctx)
		assert.Empty(t, id)
		assert.ErrorIs(t, err, idgen.ErrExhaustedRange)
		assert.True(t, apperrors.Is(err, apperrors.Exhausted))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.failures.WithLabelValues(failureReasonExhausted)))
}

func TestService_IssueRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	s, m := newTestService(t, newTestAllocator(t, 1, 100), store)

	r, err := s.IssueRecord(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "MYSG010001", r.TrackingID)
	assert.Equal(t, contract.CountryMalaysia, r.Origin)
	assert.Equal(t, contract.CountrySingapore, r.Destination)
	assert.Equal(t, 2500, r.WeightGrams)
	assert.Equal(t, "2.500", contract.FormatWeightKg(r.WeightGrams))
	assert.Equal(t, validCustomerID, r.CustomerID.String())
	assert.Equal(t, "Test   Multiple   Spaces", r.CustomerName)
	assert.Equal(t, "test-multiple-spaces", r.CustomerSlug)
	assert.Equal(t, fixedNow, r.CreatedAt)
	assert.Nil(t, r.UpdatedAt)

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, r, all[0])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.issued.WithLabelValues(issueKindRecord)))
}

func TestService_IssueRecord_InvalidInputDoesNotConsumeSequence(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*contract.IssueRequest)
	}{
		{"잘못된 출발 국가", func(r *contract.IssueRequest) { r.OriginCountry = "XX" }},
		{"소문자 국가 코드", func(r *contract.IssueRequest) { r.DestinationCountry = "sg" }},
		{"숫자가 아닌 무게", func(r *contract.IssueRequest) { r.WeightKg = "abc" }},
		{"0 무게", func(r *contract.IssueRequest) { r.WeightKg = "0" }},
		{"음수 무게", func(r *contract.IssueRequest) { r.WeightKg = "-1.5" }},
		{"빈 무게", func(r *contract.IssueRequest) { r.WeightKg = "" }},
		{"잘못된 고객 ID", func(r *contract.IssueRequest) { r.CustomerID = "not-a-uuid" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.MockRecordStore{}
			a := newTestAllocator(t, 1, 100)
			s, _ := newTestService(t, a, store)

			req := validRequest()
			tt.modify(&req)

			r, err := s.IssueRecord(context.Background(), req)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

			assert.Equal(t, int64(1), a.Current(), "검증 실패 시 시퀀스를 소비하지 않아야 합니다")
			store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestService_IssueRecord_Exhausted(t *testing.T) {
	store := &mocks.MockRecordStore{}
	a := newTestAllocator(t, 1, 2)
	s, _ := newTestService(t, a, store)

	_, _ = a.Next()
	_, _ = a.Next()

	r, err := s.IssueRecord(context.Background(), validRequest())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, idgen.ErrExhaustedRange)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_IssueRecord_StoreFailure(t *testing.T) {
	storeErr := apperrors.New(apperrors.System, "disk full")

	store := &mocks.MockRecordStore{}
	store.On("Save", mock.Anything, mock.AnythingOfType("*contract.TrackingRecord")).Return(nil, storeErr)

	s, m := newTestService(t, newTestAllocator(t, 1, 100), store)

	r, err := s.IssueRecord(context.Background(), validRequest())
	assert.Nil(t, r)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues(failureReasonStore)))
	store.AssertExpectations(t)
}

func TestService_IssueRecord_ReturnsWhatStoreReturns(t *testing.T) {
	stored := &contract.TrackingRecord{TrackingID: "FROM-STORE"}

	store := &mocks.MockRecordStore{}
	store.On("Save", mock.Anything, mock.MatchedBy(func(r *contract.TrackingRecord) bool {
		return r.TrackingID == "MYSG010001" && r.WeightGrams == 2500
	})).Return(stored, nil).Once()

	s, _ := newTestService(t, newTestAllocator(t, 1, 100), store)

	r, err := s.IssueRecord(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Same(t, stored, r)
	store.AssertExpectations(t)
}

func TestService_IssueRecord_Concurrent(t *testing.T) {
	const goroutines = 32
	const perGoroutine = 20

	store := storage.NewMemoryStore()
	s, _ := newTestService(t, newTestAllocator(t, 1, goroutines*perGoroutine), store)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				_, err := s.IssueRecord(context.Background(), validRequest())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, goroutines*perGoroutine, n)

	_, err = s.IssueRecord(context.Background(), validRequest())
	assert.ErrorIs(t, err, idgen.ErrExhaustedRange)
}

func TestService_ListAll(t *testing.T) {
	store := &mocks.MockRecordStore{}
	records := []*contract.TrackingRecord{{TrackingID: "A"}}
	store.On("FindAll", mock.Anything).Return(records, nil)

	s, _ := newTestService(t, newTestAllocator(t, 1, 10), store)

	got, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestService_Filter(t *testing.T) {
	store := storage.NewMemoryStore()
	s, _ := newTestService(t, newTestAllocator(t, 1, 100), store)
	ctx := context.Background()

	for i, req := range []contract.IssueRequest{
		{OriginCountry: "MY", DestinationCountry: "SG", WeightKg: "1.234", CustomerID: validCustomerID, CustomerName: "Ahmad Razak"},
		{OriginCountry: "US", DestinationCountry: "BR", WeightKg: "0.5", CustomerID: "b2c3d4e5-f6a7-4b6c-9d0e-2f3a4b5c6d7e", CustomerName: "John Doe"},
	} {
		_, err := s.IssueRecord(ctx, req)
		require.NoError(t, err, fmt.Sprintf("record %d", i))
	}

	tests := []struct {
		name  string
		query contract.FilterQuery
		want  []string
	}{
		{"조건 없음", contract.FilterQuery{}, []string{"MYSG010001", "USBR010002"}},
		{"공백만 있는 값은 조건 없음", contract.FilterQuery{OriginCountry: "  "}, []string{"MYSG010001", "USBR010002"}},
		{"공백만 있는 고객 이름은 조건 없음", contract.FilterQuery{CustomerName: "   "}, []string{"MYSG010001", "USBR010002"}},
		{"공백만 있는 고객 슬러그는 조건 없음", contract.FilterQuery{CustomerSlug: " \t"}, []string{"MYSG010001", "USBR010002"}},
		{"고객 이름 앞뒤 공백은 무시", contract.FilterQuery{CustomerName: "  doe "}, []string{"USBR010002"}},
		{"출발 국가", contract.FilterQuery{OriginCountry: "US"}, []string{"USBR010002"}},
		{"무게", contract.FilterQuery{WeightKg: "1.234"}, []string{"MYSG010001"}},
		{"생성 날짜", contract.FilterQuery{CreatedAt: "2026-05-01"}, []string{"MYSG010001", "USBR010002"}},
		{"생성 일시는 날짜만 비교", contract.FilterQuery{CreatedAt: "2026-05-01T23:00:00"}, []string{"MYSG010001", "USBR010002"}},
		{"다른 날짜", contract.FilterQuery{CreatedAt: "2026-05-02"}, []string{}},
		{"고객 이름", contract.FilterQuery{CustomerName: "doe"}, []string{"USBR010002"}},
		{"고객 슬러그", contract.FilterQuery{CustomerSlug: "ahmad-razak"}, []string{"MYSG010001"}},
		{"고객 ID", contract.FilterQuery{CustomerID: validCustomerID}, []string{"MYSG010001"}},

		// 해석할 수 없는 값은 조건 없음이 아니라 빈 결과로 처리한다.
		{"잘못된 무게", contract.FilterQuery{WeightKg: "heavy"}, []string{}},
		{"잘못된 고객 ID", contract.FilterQuery{CustomerID: "xyz"}, []string{}},
		{"잘못된 생성 일시", contract.FilterQuery{CreatedAt: "yesterday"}, []string{}},
		{"잘못된 국가", contract.FilterQuery{DestinationCountry: "ZZ"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Filter(ctx, tt.query)
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.TrackingID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestService_Filter_MalformedQueryDoesNotHitStore(t *testing.T) {
	store := &mocks.MockRecordStore{}
	s, _ := newTestService(t, newTestAllocator(t, 1, 10), store)

	got, err := s.Filter(context.Background(), contract.FilterQuery{WeightKg: "abc"})
	require.NoError(t, err)
	assert.Empty(t, got)
	store.AssertNotCalled(t, "FindByFilters", mock.Anything, mock.Anything)
}

func TestService_Filter_EmptyQueryUsesFindAll(t *testing.T) {
	records := []*contract.TrackingRecord{{TrackingID: "MYSG010001"}}

	for _, q := range []contract.FilterQuery{
		{},
		{CustomerName: "   ", CustomerSlug: " ", OriginCountry: "\t"},
	} {
		store := &mocks.MockRecordStore{}
		store.On("FindAll", mock.Anything).Return(records, nil).Once()

		s, _ := newTestService(t, newTestAllocator(t, 1, 10), store)

		got, err := s.Filter(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, records, got)
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "FindByFilters", mock.Anything, mock.Anything)
	}
}

func TestService_SeedSampleData(t *testing.T) {
	store := storage.NewMemoryStore()
	a := newTestAllocator(t, 1, 10)
	s, _ := newTestService(t, a, store)
	ctx := context.Background()

	n, err := s.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, int64(1), a.Current(), "예제 데이터는 시퀀스를 소비하지 않아야 합니다")

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "1Z9RB0Y89E", all[0].TrackingID)
	assert.Equal(t, "john-doe", all[0].CustomerSlug)
	assert.Equal(t, 500, all[0].WeightGrams)
	require.NotNil(t, all[0].UpdatedAt)

	// 두 번째 호출은 아무것도 하지 않는다.
	n, err = s.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_SeedSampleData_CountFailure(t *testing.T) {
	countErr := errors.New("count failed")

	store := &mocks.MockRecordStore{}
	store.On("Count", mock.Anything).Return(0, countErr)

	s, _ := newTestService(t, newTestAllocator(t, 1, 10), store)

	_, err := s.SeedSampleData(context.Background())
	assert.ErrorIs(t, err, countErr)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestMetrics_SequenceRemaining(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := newTestAllocator(t, 1, 10)
	NewMetrics(reg, a)

	_, _ = a.Next()

	n, err := testutil.GatherAndCount(reg, "tracking_sequence_remaining")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "tracking_sequence_remaining" {
			assert.Equal(t, 9.0, f.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.incIssued(issueKindBare)
		m.incFailure(failureReasonStore)
	})
}
