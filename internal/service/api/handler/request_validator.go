// Package handler API 핸들러가 공유하는 요청 검증 기능을 제공합니다.
package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// customerNamePattern 고객 이름에 허용되는 문자와 길이입니다.
var customerNamePattern = regexp.MustCompile(`^[a-z A-Z0-9_-]{3,50}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator 커스텀 규칙이 등록된 validator 인스턴스를 반환합니다.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// 에러 메시지에는 korean 태그 값을 필드명으로 사용합니다.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})

		mustRegister(v, "country", func(fl validator.FieldLevel) bool {
			return contract.Country(fl.Field().String()).IsValid()
		})
		mustRegister(v, "customer_name", func(fl validator.FieldLevel) bool {
			return customerNamePattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "customer_uuid", func(fl validator.FieldLevel) bool {
			_, err := uuid.Parse(fl.Field().String())
			return err == nil
		})

		validate = v
	})

	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("검증 규칙(%s) 등록 실패: %v", tag, err))
	}
}

// RequestValidator echo.Validator 구현체입니다.
type RequestValidator struct{}

// Validate 구조체의 validate 태그를 검사하고, 실패 시 첫 번째 위반 항목을 한글 메시지로 반환합니다.
func (RequestValidator) Validate(i interface{}) error {
	if err := ValidateRequest(i); err != nil {
		return errors.New(FormatValidationError(err))
	}
	return nil
}

// ValidateRequest 구조체의 validation tag를 기반으로 검증을 수행합니다.
func ValidateRequest(req interface{}) error {
	return getValidator().Struct(req)
}

// FormatValidationError validator 에러를 사용자 친화적인 한글 메시지로 변환합니다.
// 여러 검증 에러가 있을 경우 첫 번째 에러만 반환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", fieldName)
	case "country":
		return fmt.Sprintf("%s는 지원하는 국가 코드여야 합니다 (입력값: %v)", fieldName, fieldErr.Value())
	case "customer_name":
		return fmt.Sprintf("%s는 영문, 숫자, 공백, '_', '-'로 이루어진 3~50자여야 합니다", fieldName)
	case "customer_uuid":
		return fmt.Sprintf("%s는 올바른 UUID 형식이어야 합니다", fieldName)
	case "numeric":
		return fmt.Sprintf("%s는 숫자 형식이어야 합니다", fieldName)
	case "max":
		return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", fieldName, fieldErr.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", fieldName, fieldErr.Tag())
	}
}
