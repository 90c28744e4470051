package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/tracking-server/internal/pkg/errors"
	"github.com/darkkaiser/tracking-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 설정 파일의 키 이름이 나오도록 한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("cron_spec", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron_spec' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return validation.ValidateCronExpression(fl.Field().String()) == nil
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 오류를 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	switch firstErr.StructField() {
	case "Pattern":
		return apperrors.New(apperrors.InvalidInput, "송장번호 패턴(pattern)은 비어 있을 수 없습니다")
	case "IDLength":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("송장번호 길이(id_length)는 1에서 16 사이의 값이어야 합니다: '%v'", firstErr.Value()))
	case "InstanceID":
		return apperrors.New(apperrors.InvalidInput, "인스턴스 식별자(instance_id)는 99자를 초과할 수 없습니다")
	case "EndRange":
		return apperrors.New(apperrors.InvalidInput, "시퀀스 시작값(start_range)은 종료값(end_range)보다 작아야 합니다")
	case "Padding":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("시퀀스 자릿수(padding)는 0보다 커야 합니다: '%v'", firstErr.Value()))
	case "DefaultPrefix":
		return apperrors.New(apperrors.InvalidInput, "기본 접두어(default_prefix)는 1자 이상 6자 이하여야 합니다")
	case "Driver":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 저장소 드라이버입니다: '%v' (memory, file, sqlite 중 선택)", firstErr.Value()))
	case "DSN":
		return apperrors.New(apperrors.InvalidInput, "sqlite 저장소를 사용하려면 데이터 소스(dsn)를 지정해야 합니다")
	case "TimeSpec":
		if firstErr.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, "용량 모니터 활성화 시 점검 주기(time_spec)는 필수입니다")
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("용량 모니터 점검 주기(time_spec)가 올바른 Cron 표현식이 아닙니다: '%v' (예: 0 */5 * * * *, @every 1m)", firstErr.Value()))
	case "WarningThreshold":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("용량 경고 기준(warning_threshold)은 0에서 1 사이의 비율이어야 합니다: '%v'", firstErr.Value()))
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "TLSCertFile":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 TLS 인증서 파일 경로(tls_cert_file)는 필수입니다")
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 인증서 파일(tls_cert_file)을 찾을 수 없습니다: '%v'", firstErr.Value()))
		}
	case "TLSKeyFile":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 TLS 키 파일 경로(tls_key_file)는 필수입니다")
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 키 파일(tls_key_file)을 찾을 수 없습니다: '%v'", firstErr.Value()))
		}
	}

	if firstErr.Tag() == "cors_origin" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
