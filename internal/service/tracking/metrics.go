package tracking

import (
	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 발급 종류 (tracking_identifiers_issued_total의 kind 레이블)
const (
	issueKindBare   = "bare"
	issueKindRecord = "record"
)

// 발급 실패 사유 (tracking_allocation_failures_total의 reason 레이블)
const (
	failureReasonExhausted    = "exhausted"
	failureReasonInvalidInput = "invalid_input"
	failureReasonStore        = "store"
)

// Metrics 송장번호 발급 현황을 Prometheus 지표로 노출합니다.
//
// nil *Metrics의 메서드는 아무 일도 하지 않으므로 지표 수집이 필요 없는 테스트에서는 nil을 넘겨도 됩니다.
type Metrics struct {
	issued   *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetrics reg에 발급 지표를 등록합니다. 남은 시퀀스 개수는 수집 시점에 allocator에서 직접 읽습니다.
func NewMetrics(reg prometheus.Registerer, allocator *idgen.Allocator) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		issued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracking_identifiers_issued_total",
			Help: "Total number of issued tracking identifiers",
		}, []string{"kind"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracking_allocation_failures_total",
			Help: "Total number of failed tracking identifier issuances",
		}, []string{"reason"}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "tracking_sequence_remaining",
		Help: "Number of sequence values left in the configured range",
	}, func() float64 {
		return float64(allocator.Remaining())
	})

	return m
}

func (m *Metrics) incIssued(kind string) {
	if m == nil {
		return
	}
	m.issued.WithLabelValues(kind).Inc()
}

func (m *Metrics) incFailure(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}
