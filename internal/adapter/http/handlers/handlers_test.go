package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"garage_manager/internal/adapter/http/middleware"
	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	testGarageActor = entities.Actor{Kind: entities.ActorKindGarage, ID: "g1", GarageID: "g1"}
	testAdminActor  = entities.Actor{Kind: entities.ActorKindAdmin, ID: "root"}
)

func withActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{entities.NewValidationError("customer_name", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("wrapped: %w", usecase.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{usecase.ErrEngineerNotInGarage, http.StatusForbidden, "ENGINEER_NOT_IN_GARAGE"},
		{usecase.ErrNoEngineersProvided, http.StatusBadRequest, "NO_ENGINEERS_PROVIDED"},
		{usecase.ErrGarageNotFound, http.StatusNotFound, "GARAGE_NOT_FOUND"},
		{usecase.ErrJobCardNotFound, http.StatusNotFound, "JOB_CARD_NOT_FOUND"},
		{usecase.ErrBillNotFound, http.StatusNotFound, "BILL_NOT_FOUND"},
		{usecase.ErrPartNotFound, http.StatusNotFound, "PART_NOT_FOUND"},
		{usecase.ErrQualityCheckAlreadyDone, http.StatusConflict, "QUALITY_CHECK_ALREADY_DONE"},
		{usecase.ErrJobCardNumberConflict, http.StatusConflict, "JOB_CARD_NUMBER_CONFLICT"},
		{usecase.ErrInvoiceNumberConflict, http.StatusConflict, "INVOICE_NUMBER_CONFLICT"},
		{usecase.ErrGarageAlreadyExists, http.StatusConflict, "GARAGE_ALREADY_EXISTS"},
		{usecase.ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{usecase.ErrSubscriptionStillActive, http.StatusConflict, "SUBSCRIPTION_ACTIVE"},
		{usecase.ErrRenewalPaymentPending, http.StatusConflict, "PAYMENT_PENDING"},
		{usecase.ErrPlanNotFound, http.StatusNotFound, "PLAN_NOT_FOUND"},
		{usecase.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{usecase.ErrRenewalNotFound, http.StatusNotFound, "RENEWAL_NOT_FOUND"},
		{usecase.ErrInvalidUserRole, http.StatusBadRequest, "INVALID_ROLE"},
		{usecase.ErrSubscriptionPaymentRejected, http.StatusPaymentRequired, "PAYMENT_REJECTED"},
		{usecase.ErrInvalidJobStatus, http.StatusBadRequest, "INVALID_JOB_STATUS"},
		{usecase.ErrInvalidBillType, http.StatusBadRequest, "INVALID_BILL_TYPE"},
		{usecase.ErrInvalidReportDate, http.StatusBadRequest, "INVALID_DATE"},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{usecase.ErrGarageNotApproved, http.StatusForbidden, "GARAGE_NOT_APPROVED"},
		{usecase.ErrSubscriptionExpired, http.StatusForbidden, "SUBSCRIPTION_EXPIRED"},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{usecase.ErrEmailDeliveryFailed, http.StatusBadGateway, "EMAIL_DELIVERY_FAILED"},
		{usecase.ErrPaymentGatewayFailed, http.StatusBadGateway, "PAYMENT_PROVIDER_FAILED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := mapDomainError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestMapDomainError_ValidationMessage(t *testing.T) {
	appErr := mapDomainError(entities.NewValidationError("parts[0].quantity", "is required"))
	if appErr.Message != "parts[0].quantity: is required" {
		t.Fatalf("unexpected message: %s", appErr.Message)
	}
}

func TestBindError(t *testing.T) {
	var payload struct {
		Parts []struct {
			Quantity *billing.Number `json:"quantity"`
		} `json:"parts"`
		Name string `json:"name"`
	}

	err := json.Unmarshal([]byte(`{"parts":[{"quantity":"abc"}]}`), &payload)
	appErr := bindError(err)
	if appErr.HTTPStatus != http.StatusBadRequest || appErr.Code != "VALIDATION_ERROR" || appErr.Message != "parts.quantity: must be a number" {
		t.Fatalf("unexpected error: %+v", appErr)
	}

	err = json.Unmarshal([]byte(`{"name":7}`), &payload)
	if appErr := bindError(err); appErr.Message != "name: must be a string" {
		t.Fatalf("unexpected message: %s", appErr.Message)
	}

	err = json.Unmarshal([]byte(`{"name":`), &payload)
	if appErr := bindError(err); appErr.Code != "INVALID_REQUEST" {
		t.Fatalf("expected INVALID_REQUEST for malformed json, got %s", appErr.Code)
	}
}

func TestRequireActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if _, ok := requireActor(c); ok {
			c.Status(http.StatusOK)
		}
	})

	w := doRequest(r, http.MethodGet, "/x", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := doRequest(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
