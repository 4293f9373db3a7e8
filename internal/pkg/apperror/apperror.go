package apperror

// Error codes shared across modules. Handlers map these onto the
// response envelope so mobile clients can branch on a stable code.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeCouponIneligible = "COUPON_INELIGIBLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithReason returns a copy carrying a more specific human-readable
// message while keeping the original code and status, so errors.Is
// comparisons against the sentinel still hold via Is.
func (e *AppError) WithReason(reason string) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    reason,
		HTTPStatus: e.HTTPStatus,
	}
}

// Is matches two AppErrors by code, so a WithReason copy still
// satisfies errors.Is against its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
