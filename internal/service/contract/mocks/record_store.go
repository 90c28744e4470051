package mocks

import (
	"context"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockRecordStore contract.RecordStore 인터페이스의 Mock 구현체입니다.
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Save(ctx context.Context, r *contract.TrackingRecord) (*contract.TrackingRecord, error) {
	args := m.Called(ctx, r)
	if v := args.Get(0); v != nil {
		return v.(*contract.TrackingRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordStore) FindAll(ctx context.Context) ([]*contract.TrackingRecord, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*contract.TrackingRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordStore) FindByFilters(ctx context.Context, f contract.RecordFilter) ([]*contract.TrackingRecord, error) {
	args := m.Called(ctx, f)
	if v := args.Get(0); v != nil {
		return v.([]*contract.TrackingRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordStore) Close() error {
	return m.Called().Error(0)
}

var _ contract.RecordStore = (*MockRecordStore)(nil)
