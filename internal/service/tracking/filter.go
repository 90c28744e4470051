package tracking

import (
	"strings"
	"time"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/google/uuid"
)

// createdAtLayouts created_at 조회 조건으로 허용하는 형식 (로컬 시간 기준)
var createdAtLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// ParseFilterQuery 원본 쿼리 값을 RecordFilter로 변환합니다. 빈 값(공백 포함)은 조건에서 제외합니다.
func ParseFilterQuery(q contract.FilterQuery) (contract.RecordFilter, error) {
	var f contract.RecordFilter

	if v := strings.TrimSpace(q.OriginCountry); v != "" {
		c, err := contract.ParseCountry(v)
		if err != nil {
			return contract.RecordFilter{}, err
		}
		f.Origin = &c
	}
	if v := strings.TrimSpace(q.DestinationCountry); v != "" {
		c, err := contract.ParseCountry(v)
		if err != nil {
			return contract.RecordFilter{}, err
		}
		f.Destination = &c
	}
	if v := strings.TrimSpace(q.WeightKg); v != "" {
		grams, err := contract.ParseWeightGrams(v)
		if err != nil {
			return contract.RecordFilter{}, err
		}
		f.WeightGrams = &grams
	}
	if v := strings.TrimSpace(q.CreatedAt); v != "" {
		t, err := parseCreatedAt(v)
		if err != nil {
			return contract.RecordFilter{}, err
		}
		f.CreatedOn = &t
	}
	if v := strings.TrimSpace(q.CustomerID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return contract.RecordFilter{}, apperrors.Wrapf(err, apperrors.InvalidInput, "고객 ID가 올바른 UUID 형식이 아닙니다: %q", v)
		}
		f.CustomerID = &id
	}
	if v := strings.TrimSpace(q.CustomerName); v != "" {
		f.CustomerName = &v
	}
	if v := strings.TrimSpace(q.CustomerSlug); v != "" {
		f.CustomerSlug = &v
	}

	return f, nil
}

func parseCreatedAt(v string) (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.Newf(apperrors.InvalidInput, "생성 일시 형식이 올바르지 않습니다: %q", v)
}
