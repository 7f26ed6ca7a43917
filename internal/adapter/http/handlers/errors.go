package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"garage_manager/internal/adapter/http/middleware"
	"garage_manager/internal/domain/billing"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"
	"garage_manager/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapDomainError translates use case errors into the HTTP error envelope.
func mapDomainError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEngineerNotInGarage):
		return pkg.NewDomainErrorSimple("ENGINEER_NOT_IN_GARAGE", "Engineer does not belong to garage", http.StatusForbidden)

	case errors.Is(err, usecase.ErrGarageNotFound):
		return pkg.NewDomainErrorSimple("GARAGE_NOT_FOUND", "Garage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobCardNotFound):
		return pkg.NewDomainErrorSimple("JOB_CARD_NOT_FOUND", "Job card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRenewalNotFound):
		return pkg.NewDomainErrorSimple("RENEWAL_NOT_FOUND", "No pending renewal for this payment", http.StatusNotFound)

	case errors.Is(err, usecase.ErrJobCardNumberConflict):
		return pkg.NewDomainErrorSimple("JOB_CARD_NUMBER_CONFLICT", "Job card number already exists, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNumberConflict):
		return pkg.NewDomainErrorSimple("INVOICE_NUMBER_CONFLICT", "Invoice number already exists, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQualityCheckAlreadyDone):
		return pkg.NewDomainErrorSimple("QUALITY_CHECK_ALREADY_DONE", "Quality check already performed", http.StatusConflict)
	case errors.Is(err, usecase.ErrGarageAlreadyExists):
		return pkg.NewDomainErrorSimple("GARAGE_ALREADY_EXISTS", "Garage already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubscriptionStillActive):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_ACTIVE", "Garage already has an active subscription", http.StatusConflict)
	case errors.Is(err, usecase.ErrRenewalPaymentPending):
		return pkg.NewDomainErrorSimple("PAYMENT_PENDING", "Renewal payment is still pending", http.StatusConflict)

	case errors.Is(err, usecase.ErrNoEngineersProvided):
		return pkg.NewDomainErrorSimple("NO_ENGINEERS_PROVIDED", "At least one engineer is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoEngineerAssigned):
		return pkg.NewDomainErrorSimple("NO_ENGINEER_ASSIGNED", "No engineer assigned to job card", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("INVALID_JOB_STATUS", "Invalid job status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobCardGarageID):
		return pkg.NewDomainErrorSimple("INVALID_GARAGE_ID", "Invalid garage_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToUpdate):
		return pkg.NewDomainErrorSimple("NOTHING_TO_UPDATE", "Nothing to update", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillType):
		return pkg.NewDomainErrorSimple("INVALID_BILL_TYPE", "Invalid bill type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Invalid job_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailRequired):
		return pkg.NewDomainErrorSimple("EMAIL_REQUIRED", "Email address is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPDFRequired):
		return pkg.NewDomainErrorSimple("PDF_REQUIRED", "PDF data is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPDF):
		return pkg.NewDomainErrorSimple("INVALID_PDF", "PDF data is not valid base64", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReportDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReportPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Start date is after end date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSubscriptionDuration):
		return pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION_DURATION", "Invalid subscription duration", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSubscriptionAmount):
		return pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION_AMOUNT", "Invalid subscription amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Role must be admin, manager or staff", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGarageNotVerified):
		return pkg.NewDomainErrorSimple("GARAGE_NOT_VERIFIED", "Garage not verified", http.StatusForbidden)
	case errors.Is(err, usecase.ErrGarageNotApproved):
		return pkg.NewDomainErrorSimple("GARAGE_NOT_APPROVED", "Garage not approved by admin", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSubscriptionExpired):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_EXPIRED", "Subscription expired", http.StatusForbidden)

	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_REQUEST", "Invalid payment request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Subscription payment rejected", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_FAILED", "Payment provider failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrEmailDeliveryFailed):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Failed to send email", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// bindError maps a body that failed to decode. A value of the wrong type
// becomes a validation error naming its field path.
func bindError(err error) *pkg.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return mapDomainError(entities.NewValidationError(typeErr.Field, "must be "+expectedKind(typeErr.Type)))
	}
	return errInvalidRequest
}

func expectedKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	if billing.IsNumberType(t) {
		return "a number"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	}
	return "a valid value"
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor writes 401 and returns false when the route was reached
// without an authenticated actor.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		writeError(c, errUnauthorized)
		return entities.Actor{}, false
	}
	return actor, true
}
