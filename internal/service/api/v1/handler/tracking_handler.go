package handler

import (
	"net/http"

	"github.com/darkkaiser/tracking-server/internal/service/api/constants"
	"github.com/darkkaiser/tracking-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/tracking-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/tracking-server/internal/service/contract"
	applog "github.com/darkkaiser/tracking-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// GetAllHandler godoc
// @Summary 전체 송장 레코드 조회
// @Description 저장된 모든 송장 레코드를 송장번호 순으로 반환합니다.
// @Tags Tracking
// @Produce json
// @Success 200 {array} response.TrackingResponse "송장 레코드 목록"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /getAll [get]
func (h *Handler) GetAllHandler(c echo.Context) error {
	records, err := h.trackingService.ListAll(c.Request().Context())
	if err != nil {
		h.log(c).WithField("error", err).Error("송장 레코드 전체 조회 실패")
		return toHTTPError(err)
	}

	h.log(c).WithField("count", len(records)).Debug("송장 레코드 전체 조회")

	return c.JSON(http.StatusOK, response.FromRecords(records))
}

// NextTrackingNumberHandler godoc
// @Summary 송장번호 단독 발급
// @Description 레코드를 저장하지 않고 기본 접두어로 다음 송장번호만 발급합니다.
// @Description 발급 범위가 소진되면 500을 반환하며, 이후의 모든 발급 요청도 실패합니다.
// @Tags Tracking
// @Produce plain
// @Success 200 {string} string "발급된 송장번호" example(MY010001)
// @Failure 500 {object} response.ErrorResponse "발급 범위 소진 또는 서버 내부 오류"
// @Router /next-tracking-number [get]
func (h *Handler) NextTrackingNumberHandler(c echo.Context) error {
	id, err := h.trackingService.NextTrackingNumber(c.Request().Context())
	if err != nil {
		h.log(c).WithField("error", err).Error("송장번호 발급 실패")
		return toHTTPError(err)
	}

	h.log(c).WithField("tracking_id", id).Info("송장번호 단독 발급")

	return c.String(http.StatusOK, id)
}

// CreateHandler godoc
// @Summary 송장 레코드 발급
// @Description 출발/도착 국가 코드를 접두어로 송장번호를 발급하고 레코드를 저장합니다.
// @Description 무게는 kg 단위의 10진수 문자열이며 그램 단위로 반올림하여 저장합니다.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param request body request.CreateRequest true "발급 요청"
// @Success 200 {object} response.TrackingResponse "발급된 송장 레코드"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (국가 코드, 무게, 고객 정보 형식 오류)"
// @Failure 415 {object} response.ErrorResponse "지원하지 않는 Content-Type"
// @Failure 500 {object} response.ErrorResponse "발급 범위 소진 또는 서버 내부 오류"
// @Router /create [post]
func (h *Handler) CreateHandler(c echo.Context) error {
	req := new(request.CreateRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := c.Validate(req); err != nil {
		return NewErrValidationFailed(err.Error())
	}

	record, err := h.trackingService.IssueRecord(c.Request().Context(), req.ToIssueRequest())
	if err != nil {
		h.log(c).WithFields(applog.Fields{
			"origin_country":      req.SourceCountry,
			"destination_country": req.DestinationCountry,
			"error":               err,
		}).Warn("송장 레코드 발급 실패")
		return toHTTPError(err)
	}

	h.log(c).WithField("tracking_id", record.TrackingID).Info("송장 레코드 발급")

	return c.JSON(http.StatusOK, response.FromRecord(record))
}

// FilterHandler godoc
// @Summary 송장 레코드 조건 조회
// @Description 지정한 조건을 모두 만족하는 레코드를 반환합니다. 비어 있는 조건은 무시합니다.
// @Description 해석할 수 없는 조건 값(무게, 날짜, 고객 ID, 국가 코드)이 있으면 오류 대신 빈 목록을 반환합니다.
// @Description created_at은 "2006-01-02" 또는 "2006-01-02 15:04:05" 형식이며 같은 날짜의 레코드와 일치합니다.
// @Tags Tracking
// @Produce json
// @Param origin_country_id query string false "출발 국가 코드" example(MY)
// @Param destination_country_id query string false "도착 국가 코드" example(SG)
// @Param weight query string false "무게 (kg)" example(2.5)
// @Param created_at query string false "생성일" example(2025-01-31)
// @Param customer_id query string false "고객 ID (UUID)"
// @Param customer_name query string false "고객 이름 (부분 일치, 대소문자 무시)"
// @Param customer_slug query string false "고객 슬러그"
// @Success 200 {array} response.TrackingResponse "조회 결과"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /filter [get]
func (h *Handler) FilterHandler(c echo.Context) error {
	q := contract.FilterQuery{
		OriginCountry:      c.QueryParam(constants.QueryOriginCountry),
		DestinationCountry: c.QueryParam(constants.QueryDestinationCountry),
		WeightKg:           c.QueryParam(constants.QueryWeight),
		CreatedAt:          c.QueryParam(constants.QueryCreatedAt),
		CustomerID:         c.QueryParam(constants.QueryCustomerID),
		CustomerName:       c.QueryParam(constants.QueryCustomerName),
		CustomerSlug:       c.QueryParam(constants.QueryCustomerSlug),
	}

	records, err := h.trackingService.Filter(c.Request().Context(), q)
	if err != nil {
		h.log(c).WithField("error", err).Error("송장 레코드 조건 조회 실패")
		return toHTTPError(err)
	}

	h.log(c).WithField("count", len(records)).Debug("송장 레코드 조건 조회")

	return c.JSON(http.StatusOK, response.FromRecords(records))
}
