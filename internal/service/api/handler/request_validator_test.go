package handler

import (
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/tracking-server/internal/service/api/v1/model/request"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() request.CreateRequest {
	return request.CreateRequest{
		SourceCountry:      "MY",
		DestinationCountry: "SG",
		Weight:             "2.5",
		CustomerID:         "de619854-b59b-425e-9db4-943979e1bd49",
		CustomerName:       "RedBox Logistics",
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	const routines = 50
	validators := make([]*validator.Validate, routines)

	var wg sync.WaitGroup
	for i := range routines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			validators[i] = getValidator()
		}()
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, validators[0], validators[i])
	}
}

func TestValidateRequest_CreateRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(r *request.CreateRequest)
		contains []string
	}{
		{name: "정상 요청", mutate: func(*request.CreateRequest) {}},
		{name: "정수 무게", mutate: func(r *request.CreateRequest) { r.Weight = "3" }},
		{name: "이름 최소 길이", mutate: func(r *request.CreateRequest) { r.CustomerName = "abc" }},
		{name: "출발 국가 누락", mutate: func(r *request.CreateRequest) { r.SourceCountry = "" }, contains: []string{"출발 국가(sourceCountry)", "필수"}},
		{name: "지원하지 않는 국가", mutate: func(r *request.CreateRequest) { r.DestinationCountry = "XX" }, contains: []string{"도착 국가(destinationCountry)", "XX"}},
		{name: "소문자 국가 코드", mutate: func(r *request.CreateRequest) { r.SourceCountry = "my" }, contains: []string{"출발 국가"}},
		{name: "숫자가 아닌 무게", mutate: func(r *request.CreateRequest) { r.Weight = "heavy" }, contains: []string{"무게(weight)", "숫자"}},
		{name: "UUID가 아닌 고객 ID", mutate: func(r *request.CreateRequest) { r.CustomerID = "not-a-uuid" }, contains: []string{"고객 ID(customerId)", "UUID"}},
		{name: "너무 짧은 이름", mutate: func(r *request.CreateRequest) { r.CustomerName = "ab" }, contains: []string{"고객 이름(customerName)", "3~50자"}},
		{name: "허용되지 않는 문자", mutate: func(r *request.CreateRequest) { r.CustomerName = "John@Doe" }, contains: []string{"고객 이름(customerName)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validCreateRequest()
			tt.mutate(&req)

			err := RequestValidator{}.Validate(&req)
			if len(tt.contains) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatValidationError(nil))
	assert.Equal(t, "plain", FormatValidationError(errors.New("plain")))
}
