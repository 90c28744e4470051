package config

import (
	"fmt"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/internal/service/tracking/idgen"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug       bool           `json:"debug"`
	Tracking    TrackingConfig `json:"tracking"`
	Store       StoreConfig    `json:"store"`
	Monitor     MonitorConfig  `json:"monitor"`
	TrackingAPI APIConfig      `json:"tracking_api"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Tracking.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.Store, "저장소(store)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Monitor, "용량 모니터(monitor)"); err != nil {
		return err
	}
	if err := c.TrackingAPI.validate(v); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 운영 안정성을 위해 권장되는 설정 준수 여부를 진단하여 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string
	warnings = append(warnings, c.Tracking.VerifyRecommendations()...)
	warnings = append(warnings, c.TrackingAPI.WS.VerifyRecommendations()...)
	return warnings
}

// TrackingConfig 송장번호 발급 범위와 표기 형식을 정의하는 설정 구조체
type TrackingConfig struct {
	// Pattern 존재 여부만 검증하며 발급 알고리즘에는 사용되지 않습니다.
	Pattern       string `json:"pattern" validate:"required"`
	IDLength      int    `json:"id_length" validate:"min=1,max=16"`
	InstanceID    string `json:"instance_id" validate:"max=99"`
	StartRange    int64  `json:"start_range"`
	EndRange      int64  `json:"end_range" validate:"gtfield=StartRange"`
	Padding       int    `json:"padding" validate:"min=1"`
	DefaultPrefix string `json:"default_prefix" validate:"required,max=6"`
}

func (c *TrackingConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "송장번호(tracking)"); err != nil {
		return err
	}
	if err := c.Range().Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "송장번호 시퀀스 범위 설정이 올바르지 않습니다")
	}
	return nil
}

// Range 시퀀스 할당기에 전달할 범위 설정을 반환합니다.
func (c *TrackingConfig) Range() idgen.RangeConfig {
	return idgen.RangeConfig{
		StartRange: c.StartRange,
		EndRange:   c.EndRange,
		Padding:    c.Padding,
		InstanceID: c.InstanceID,
	}
}

// VerifyRecommendations 발급될 송장번호가 id_length를 넘을 수 있는지 진단합니다.
func (c *TrackingConfig) VerifyRecommendations() []string {
	var warnings []string

	maxLen := idgen.MaxLength(c.Range())
	if maxLen > c.IDLength {
		warnings = append(warnings, fmt.Sprintf("발급될 송장번호의 최대 길이(%d자)가 설정된 id_length(%d자)를 초과할 수 있습니다 (접두어 최대 %d자 + instance_id + 시퀀스)", maxLen, c.IDLength, idgen.MaxPrefixLength))
	}

	return warnings
}

// StoreConfig 송장 레코드 저장소를 정의하는 설정 구조체
type StoreConfig struct {
	Driver         string `json:"driver" validate:"oneof=memory file sqlite"`
	DSN            string `json:"dsn" validate:"required_if=Driver sqlite"`
	Dir            string `json:"dir"`
	SeedSampleData bool   `json:"seed_sample_data"`
}

// MonitorConfig 시퀀스 잔여 용량 점검 주기를 정의하는 설정 구조체
type MonitorConfig struct {
	Enabled          bool    `json:"enabled"`
	TimeSpec         string  `json:"time_spec" validate:"required_if=Enabled true,omitempty,cron_spec"`
	WarningThreshold float64 `json:"warning_threshold" validate:"gte=0,lte=1"`
}

// APIConfig 송장 발급 REST API 서버 설정 구조체
type APIConfig struct {
	WS        WSConfig        `json:"ws"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.WS, "웹 서버(ws)"); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.RateLimit, "요청 제한(rate_limit)"); err != nil {
		return err
	}
	return nil
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(v, c, "CORS(cors)")
}

// RateLimitConfig IP별 요청 제한 설정 구조체
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=1"`
	Burst             int `json:"burst" validate:"min=1"`
}
