package dto

// Error codes returned in ErrorDetail.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidJSON        = "INVALID_JSON"
	CodeInvalidContentType = "INVALID_CONTENT_TYPE"
	CodeInvalidParameters  = "INVALID_PARAMETERS"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeRequestTooLarge    = "REQUEST_TOO_LARGE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeServiceError       = "SERVICE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorDetail carries a machine readable code and a human readable message.
// Details is only set for field level validation failures.
type ErrorDetail struct {
	Code    string              `json:"code" example:"VALIDATION_ERROR"`
	Message string              `json:"message" example:"Validation failed: amount: Amount must be positive"`
	Details map[string][]string `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every error body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse builds an error body without field details.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
