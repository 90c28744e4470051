package tracking

import (
	"context"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/darkkaiser/tracking-server/pkg/strutil"
	"github.com/google/uuid"
)

type sampleRecord struct {
	trackingID   string
	origin       contract.Country
	destination  contract.Country
	weightGrams  int
	customerID   string
	customerName string
}

// sampleRecords 개발 환경에서 조회 API를 바로 확인할 수 있도록 넣어 두는 예제 레코드입니다.
var sampleRecords = []sampleRecord{
	{"1Z9RB0Y89E", contract.CountryUSA, contract.CountryBrazil, 500, "a1b2c3d4-e5f6-4a5b-8c9d-1e2f3a4b5c6d", "John Doe"},
	{"2Z9RB0Y89F", contract.CountryChina, contract.CountryThailand, 750, "b2c3d4e5-f6a7-5b6c-9d0e-2f3a4b5c6d7e", "Jane Smith"},
	{"3Z9RB0Y89G", contract.CountryChina, contract.CountryMalaysia, 1200, "c3d4e5f6-a7b8-6c7d-0e1f-3a4b5c6d7e8f", "Akira Tanaka"},
	{"4Z9RB0Y89H", contract.CountryVietnam, contract.CountryMalaysia, 850, "f1c4d4e6-f6a9-5b6c-9d2e-3f3a4b5c6d7e", "David Johnson"},
}

// SeedSampleData 저장소가 비어 있으면 예제 레코드를 저장하고 저장한 개수를 반환합니다.
// 예제 레코드는 고정된 송장번호를 사용하므로 시퀀스를 소비하지 않습니다.
func (s *Service) SeedSampleData(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"records": n,
		}).Info("예제 데이터 생략: 저장소에 이미 레코드가 있습니다")

		return 0, nil
	}

	now := s.now()
	for _, sr := range sampleRecords {
		updatedAt := now
		r := &contract.TrackingRecord{
			TrackingID:   sr.trackingID,
			Origin:       sr.origin,
			Destination:  sr.destination,
			WeightGrams:  sr.weightGrams,
			CustomerID:   uuid.MustParse(sr.customerID),
			CustomerName: sr.customerName,
			CustomerSlug: strutil.Slugify(sr.customerName),
			CreatedAt:    now,
			UpdatedAt:    &updatedAt,
		}
		if _, err := s.store.Save(ctx, r); err != nil {
			return 0, err
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"records": len(sampleRecords),
	}).Info("예제 데이터 저장 완료")

	return len(sampleRecords), nil
}
