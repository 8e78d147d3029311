package transport

import (
	"encoding/json"
	"net/http"

	"github.com/tenanthub/company-management/internal"
)

// Validatable is the contract every request DTO satisfies: sanitize the
// payload, then report an ordered collection of per-field problems.
type Validatable interface {
	Validate() *internal.AppError
}

// DecodeAndValidate decodes the request body into dto and runs its
// validation pipeline. Failures always come back as a structured
// validation error; if a constraint check misbehaves internally, the
// caller still gets a generic validation failure rather than a raw
// panic or library error.
func DecodeAndValidate(r *http.Request, dto Validatable) (appErr *internal.AppError) {
	defer func() {
		if rec := recover(); rec != nil {
			appErr = internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed)
		}
	}()

	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		return internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed)
	}

	if err := dto.Validate(); err != nil {
		return err
	}

	return nil
}
