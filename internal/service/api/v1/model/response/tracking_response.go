// Package response v1 API의 응답 모델을 정의합니다.
package response

import "github.com/darkkaiser/tracking-server/internal/service/contract"

// TrackingResponse 송장 레코드 응답
type TrackingResponse struct {
	TrackingID         string `json:"trackingId" example:"MYSG010001"`
	OriginCountry      string `json:"originCountry" example:"MY"`
	DestinationCountry string `json:"destinationCountry" example:"SG"`
	// 무게 (kg, 소수점 셋째 자리)
	Weight       string `json:"weight" example:"2.500"`
	CustomerID   string `json:"customerId" example:"de619854-b59b-425e-9db4-943979e1bd49"`
	CustomerName string `json:"customerName" example:"RedBox Logistics"`
	CustomerSlug string `json:"customerSlug" example:"redbox-logistics"`
}

// FromRecord 레코드를 응답 모델로 변환합니다.
func FromRecord(r *contract.TrackingRecord) TrackingResponse {
	return TrackingResponse{
		TrackingID:         r.TrackingID,
		OriginCountry:      r.Origin.String(),
		DestinationCountry: r.Destination.String(),
		Weight:             contract.FormatWeightKg(r.WeightGrams),
		CustomerID:         r.CustomerID.String(),
		CustomerName:       r.CustomerName,
		CustomerSlug:       r.CustomerSlug,
	}
}

// FromRecords 레코드 목록을 응답 모델로 변환합니다. 결과가 없어도 nil이 아닌 빈 슬라이스를 반환합니다.
func FromRecords(records []*contract.TrackingRecord) []TrackingResponse {
	out := make([]TrackingResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRecord(r))
	}
	return out
}
