package contract

import (
	"time"

	"github.com/google/uuid"
)

// TrackingRecord 발급된 송장번호와 화물/고객 정보를 담은 레코드입니다.
type TrackingRecord struct {
	TrackingID   string     `json:"tracking_id" db:"tracking_id"`
	Origin       Country    `json:"origin_country" db:"origin_country"`
	Destination  Country    `json:"destination_country" db:"destination_country"`
	WeightGrams  int        `json:"weight_grams" db:"weight_grams"`
	CustomerID   uuid.UUID  `json:"customer_id" db:"customer_id"`
	CustomerName string     `json:"customer_name" db:"customer_name"`
	CustomerSlug string     `json:"customer_slug" db:"customer_slug"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Clone 레코드의 깊은 복사본을 반환합니다.
func (r *TrackingRecord) Clone() *TrackingRecord {
	if r == nil {
		return nil
	}

	c := *r
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}
