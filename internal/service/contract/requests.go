package contract

// IssueRequest 송장 레코드 발급 요청입니다. 모든 값은 검증 전의 원본 문자열입니다.
type IssueRequest struct {
	OriginCountry      string
	DestinationCountry string
	WeightKg           string
	CustomerID         string
	CustomerName       string
}

// FilterQuery 레코드 조회 요청의 원본 쿼리 값입니다. 빈 문자열은 조건 없음을 의미합니다.
type FilterQuery struct {
	OriginCountry      string
	DestinationCountry string
	WeightKg           string
	CreatedAt          string
	CustomerID         string
	CustomerName       string
	CustomerSlug       string
}
