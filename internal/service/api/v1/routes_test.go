package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/darkkaiser/tracking-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubTrackingService struct{}

func (stubTrackingService) NextTrackingNumber(context.Context) (string, error) { return "", nil }

func (stubTrackingService) IssueRecord(context.Context, contract.IssueRequest) (*contract.TrackingRecord, error) {
	return nil, nil
}

func (stubTrackingService) ListAll(context.Context) ([]*contract.TrackingRecord, error) {
	return nil, nil
}

func (stubTrackingService) Filter(context.Context, contract.FilterQuery) ([]*contract.TrackingRecord, error) {
	return nil, nil
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, handler.NewHandler(stubTrackingService{}))

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, prefix := range []string{"", APIPrefix} {
		for _, route := range []struct{ method, path string }{
			{http.MethodGet, "/getAll"},
			{http.MethodGet, "/next-tracking-number"},
			{http.MethodPost, "/create"},
			{http.MethodGet, "/filter"},
		} {
			key := route.method + " " + prefix + route.path
			assert.True(t, registered[key], "라우트 미등록: %s", key)
		}
	}
}
