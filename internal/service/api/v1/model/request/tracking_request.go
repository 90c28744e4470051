// Package request v1 API의 요청 모델을 정의합니다.
package request

import "github.com/darkkaiser/tracking-server/internal/service/contract"

// CreateRequest 송장 레코드 발급 요청
type CreateRequest struct {
	// 출발 국가 코드
	SourceCountry string `json:"sourceCountry" validate:"required,country" korean:"출발 국가(sourceCountry)" example:"MY"`

	// 도착 국가 코드
	DestinationCountry string `json:"destinationCountry" validate:"required,country" korean:"도착 국가(destinationCountry)" example:"SG"`

	// 화물 무게 (kg, 10진수 문자열)
	Weight string `json:"weight" validate:"required,numeric" korean:"무게(weight)" example:"2.5"`

	// 고객 ID (UUID)
	CustomerID string `json:"customerId" validate:"required,customer_uuid" korean:"고객 ID(customerId)" example:"de619854-b59b-425e-9db4-943979e1bd49"`

	// 고객 이름
	CustomerName string `json:"customerName" validate:"required,customer_name" korean:"고객 이름(customerName)" example:"RedBox Logistics"`
}

// ToIssueRequest 서비스 계층의 발급 요청으로 변환합니다.
func (r *CreateRequest) ToIssueRequest() contract.IssueRequest {
	return contract.IssueRequest{
		OriginCountry:      r.SourceCountry,
		DestinationCountry: r.DestinationCountry,
		WeightKg:           r.Weight,
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
	}
}
