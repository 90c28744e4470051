// Package tracking 시퀀스 할당, 송장번호 표기, 레코드 저장을 묶어 송장 발급 기능을 제공합니다.
package tracking

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/darkkaiser/tracking-server/pkg/strutil"
	"github.com/google/uuid"
)

// component 송장 발급 서비스의 로깅용 컴포넌트 이름
const component = "tracking.service"

// DefaultPrefix 접두어가 지정되지 않은 단독 송장번호에 사용하는 기본 접두어입니다.
const DefaultPrefix = "MY"

// Service 송장번호 및 송장 레코드 발급 서비스입니다.
type Service struct {
	allocator *idgen.Allocator
	store     contract.RecordStore
	metrics   *Metrics

	defaultPrefix string

	// now 테스트에서 시각을 고정하기 위해 교체할 수 있습니다.
	now func() time.Time
}

// NewService 새로운 Service를 생성합니다. defaultPrefix가 비어 있으면 DefaultPrefix를 사용합니다.
func NewService(allocator *idgen.Allocator, store contract.RecordStore, metrics *Metrics, defaultPrefix string) *Service {
	if allocator == nil {
		panic("Allocator는 필수입니다")
	}
	if store == nil {
		panic("RecordStore는 필수입니다")
	}
	if defaultPrefix == "" {
		defaultPrefix = DefaultPrefix
	}

	return &Service{
		allocator: allocator,
		store:     store,
		metrics:   metrics,

		defaultPrefix: defaultPrefix,

		now: time.Now,
	}
}

// IssueBareIdentifier 레코드를 저장하지 않고 송장번호만 발급합니다.
// 범위가 소진되면 idgen.ErrExhaustedRange를 그대로 반환합니다.
func (s *Service) IssueBareIdentifier(_ context.Context, countryPrefix string) (string, error) {
	id, err := s.issue(countryPrefix)
	if err != nil {
		return "", err
	}

	s.metrics.incIssued(issueKindBare)

	return id, nil
}

// NextTrackingNumber 기본 접두어로 단독 송장번호를 발급합니다.
func (s *Service) NextTrackingNumber(ctx context.Context) (string, error) {
	return s.IssueBareIdentifier(ctx, s.defaultPrefix)
}

// IssueRecord 요청 값을 검증한 뒤 송장번호를 발급하고 레코드를 저장합니다.
//
// 검증에 실패하면 시퀀스를 소비하지 않습니다. 성공한 호출은 정확히 하나의 시퀀스를 소비합니다.
func (s *Service) IssueRecord(ctx context.Context, req contract.IssueRequest) (*contract.TrackingRecord, error) {
	origin, err := contract.ParseCountry(req.OriginCountry)
	if err != nil {
		s.metrics.incFailure(failureReasonInvalidInput)
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "출발 국가 코드가 올바르지 않습니다")
	}
	destination, err := contract.ParseCountry(req.DestinationCountry)
	if err != nil {
		s.metrics.incFailure(failureReasonInvalidInput)
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "도착 국가 코드가 올바르지 않습니다")
	}
	grams, err := contract.ParsePositiveWeightGrams(req.WeightKg)
	if err != nil {
		s.metrics.incFailure(failureReasonInvalidInput)
		return nil, err
	}
	customerID, err := uuid.Parse(strings.TrimSpace(req.CustomerID))
	if err != nil {
		s.metrics.incFailure(failureReasonInvalidInput)
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "고객 ID가 올바른 UUID 형식이 아닙니다: %q", req.CustomerID)
	}

	id, err := s.issue(origin.String() + destination.String())
	if err != nil {
		return nil, err
	}

	record := &contract.TrackingRecord{
		TrackingID:   id,
		Origin:       origin,
		Destination:  destination,
		WeightGrams:  grams,
		CustomerID:   customerID,
		CustomerName: req.CustomerName,
		CustomerSlug: strutil.Slugify(req.CustomerName),
		CreatedAt:    s.now(),
	}

	saved, err := s.store.Save(ctx, record)
	if err != nil {
		s.metrics.incFailure(failureReasonStore)

		applog.WithComponentAndFields(component, applog.Fields{
			"tracking_id": id,
			"error":       err,
		}).Error("송장 레코드 저장 실패: 발급된 송장번호는 재사용되지 않습니다")

		return nil, err
	}

	s.metrics.incIssued(issueKindRecord)

	applog.WithComponentAndFields(component, applog.Fields{
		"tracking_id":         saved.TrackingID,
		"origin_country":      saved.Origin,
		"destination_country": saved.Destination,
		"weight_grams":        saved.WeightGrams,
	}).Debug("송장 레코드 발급 완료")

	return saved, nil
}

// ListAll 저장된 모든 레코드를 반환합니다.
func (s *Service) ListAll(ctx context.Context) ([]*contract.TrackingRecord, error) {
	return s.store.FindAll(ctx)
}

// Filter 원본 쿼리 값을 해석하여 레코드를 조회합니다.
//
// 빈 값은 조건에서 제외합니다. 해석할 수 없는 값이 하나라도 있으면
// 저장소를 조회하지 않고 빈 목록을 반환합니다.
func (s *Service) Filter(ctx context.Context, q contract.FilterQuery) ([]*contract.TrackingRecord, error) {
	f, err := ParseFilterQuery(q)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"query": q,
			"error": err,
		}).Debug("조회 조건 해석 실패: 빈 결과를 반환합니다")

		return []*contract.TrackingRecord{}, nil
	}

	if f.IsEmpty() {
		return s.store.FindAll(ctx)
	}
	return s.store.FindByFilters(ctx, f)
}

// Allocator 서비스가 사용하는 시퀀스 할당기를 반환합니다.
func (s *Service) Allocator() *idgen.Allocator {
	return s.allocator
}

// Store 서비스가 사용하는 레코드 저장소를 반환합니다.
func (s *Service) Store() contract.RecordStore {
	return s.store
}

func (s *Service) issue(prefix string) (string, error) {
	seq, err := s.allocator.Next()
	if err != nil {
		if errors.Is(err, idgen.ErrExhaustedRange) {
			s.metrics.incFailure(failureReasonExhausted)
		}
		return "", err
	}

	cfg := s.allocator.Config()

	return idgen.Format(prefix, cfg.InstanceID, seq, cfg.Padding), nil
}
