package contract

import (
	"context"
	"time"

	"github.com/darkkaiser/tracking-server/pkg/strutil"
	"github.com/google/uuid"
)

// RecordStore 송장 레코드를 저장하고 조회하는 저장소 인터페이스입니다.
//
// 구현체는 여러 고루틴에서 동시에 호출되어도 안전해야 하며,
// 조회 결과로 반환한 레코드를 호출자가 수정해도 저장된 데이터에 영향을 주어서는 안 됩니다.
type RecordStore interface {
	// Save 레코드를 저장하고 저장된 상태의 레코드를 반환합니다.
	// 같은 TrackingID의 레코드가 이미 있으면 덮어씁니다.
	Save(ctx context.Context, r *TrackingRecord) (*TrackingRecord, error)

	// FindAll 저장된 모든 레코드를 TrackingID 오름차순으로 반환합니다.
	FindAll(ctx context.Context) ([]*TrackingRecord, error)

	// FindByFilters 필터 조건을 모두 만족하는 레코드를 TrackingID 오름차순으로 반환합니다.
	FindByFilters(ctx context.Context, f RecordFilter) ([]*TrackingRecord, error)

	// Count 저장된 레코드의 개수를 반환합니다.
	Count(ctx context.Context) (int, error)

	// Close 저장소가 사용하는 리소스를 해제합니다.
	Close() error
}

// RecordFilter 레코드 조회 조건입니다. nil 필드는 조건에서 제외됩니다.
type RecordFilter struct {
	Origin       *Country
	Destination  *Country
	WeightGrams  *int
	CreatedOn    *time.Time // 로컬 시간 기준 같은 날짜에 생성된 레코드
	CustomerID   *uuid.UUID
	CustomerName *string // 대소문자를 구분하지 않는 부분 일치
	CustomerSlug *string
}

// IsEmpty 설정된 조건이 하나도 없는지 여부를 반환합니다.
func (f RecordFilter) IsEmpty() bool {
	return f.Origin == nil && f.Destination == nil && f.WeightGrams == nil && f.CreatedOn == nil &&
		f.CustomerID == nil && f.CustomerName == nil && f.CustomerSlug == nil
}

// Match 레코드가 모든 조건을 만족하는지 검사합니다.
func (f RecordFilter) Match(r *TrackingRecord) bool {
	if f.Origin != nil && r.Origin != *f.Origin {
		return false
	}
	if f.Destination != nil && r.Destination != *f.Destination {
		return false
	}
	if f.WeightGrams != nil && r.WeightGrams != *f.WeightGrams {
		return false
	}
	if f.CreatedOn != nil && !SameDay(r.CreatedAt, *f.CreatedOn) {
		return false
	}
	if f.CustomerID != nil && r.CustomerID != *f.CustomerID {
		return false
	}
	if f.CustomerName != nil && !strutil.ContainsFold(r.CustomerName, *f.CustomerName) {
		return false
	}
	if f.CustomerSlug != nil && r.CustomerSlug != *f.CustomerSlug {
		return false
	}
	return true
}

// SameDay 두 시각이 로컬 시간 기준 같은 날짜인지 검사합니다.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
