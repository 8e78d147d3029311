package validation

import (
	"fmt"
	"regexp"
	"strings"

	errors "github.com/tenanthub/company-management/internal"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
)

type ValidatorFunc func(interface{}) *errors.AppError

type TransformFunc func(string) string

// FieldValidator holds an ordered list of transforms and constraint
// checks for one named field. Transforms always run before any
// constraint is evaluated.
type FieldValidator struct {
	FieldName  string
	Value      interface{}
	ref        *string
	Transforms []TransformFunc
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Transforms: make([]TransformFunc, 0),
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

// StringField registers a field through a pointer so that transforms
// (trimming, tag stripping) write the sanitized value back into the DTO.
func (v *ValidationBuilder) StringField(name string, value *string) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		ref:        value,
		Transforms: make([]TransformFunc, 0),
		Validators: make([]ValidatorFunc, 0),
	}
	if value != nil {
		fv.Value = *value
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

// ----------------- TRANSFORMS -----------------

func (fv *FieldValidator) Trim() *FieldValidator {
	fv.Transforms = append(fv.Transforms, strings.TrimSpace)
	return fv
}

// StripTags removes embedded markup so that an address wrapped in tags
// is cleaned before the format check runs.
func (fv *FieldValidator) StripTags() *FieldValidator {
	fv.Transforms = append(fv.Transforms, func(s string) string {
		return tagPattern.ReplaceAllString(s, "")
	})
	return fv
}

func (fv *FieldValidator) Transform(fn TransformFunc) *FieldValidator {
	fv.Transforms = append(fv.Transforms, fn)
	return fv
}

// ----------------- CONSTRAINTS -----------------

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if v == "" {
				return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeValidationFailed)
			}
		case int64:
			if v == 0 {
				return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeValidationFailed)
			}
		case *string:
			if v == nil || *v == "" {
				return errors.NewValidationFieldError(fv.FieldName, fmt.Sprintf("%s is required", fv.FieldName), errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			if !emailPattern.MatchString(v) {
				message := fmt.Sprintf("%s must be a valid email address", fv.FieldName)
				return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeInvalidEmail)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinLength(min int, code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			if len(v) < min {
				message := fmt.Sprintf("%s must be at least %d characters", fv.FieldName, min)
				return errors.NewValidationFieldError(fv.FieldName, message, code)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				message := fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
				return errors.NewValidationFieldError(fv.FieldName, message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) OneOf(allowed []string, code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			for _, a := range allowed {
				if v == a {
					return nil
				}
			}
			message := fmt.Sprintf("%s must be one of: %s", fv.FieldName, strings.Join(allowed, ", "))
			return errors.NewValidationFieldError(fv.FieldName, message, code)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate applies each field's transforms, then its constraint checks
// in declaration order, collecting every per-field problem. A value that
// only fails a constraint after transformation is still rejected.
func (v *ValidationBuilder) Validate() *errors.AppError {
	var validationErrors []errors.ValidationError

	for i := range v.fields {
		field := &v.fields[i]

		if s, ok := field.Value.(string); ok && len(field.Transforms) > 0 {
			for _, transform := range field.Transforms {
				s = transform(s)
			}
			field.Value = s
			if field.ref != nil {
				*field.ref = s
			}
		}

		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				if appErr, ok := errors.IsAppError(err); ok {
					if details, ok := appErr.Details.(errors.ValidationErrors); ok {
						validationErrors = append(validationErrors, details.Errors...)
					} else {
						validationErrors = append(validationErrors, errors.ValidationError{
							Field:   field.FieldName,
							Message: appErr.Message,
							Code:    string(appErr.Code),
						})
					}
				}
			}
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: validationErrors})
	}

	return nil
}

// ValidateEmail runs the standard sanitize-then-check pipeline for an
// email field and writes the cleaned value back through the pointer.
func ValidateEmail(fieldName string, email *string) *errors.AppError {
	validator := NewValidator()
	validator.StringField(fieldName, email).
		Trim().
		StripTags().
		Required().
		Email()
	return validator.Validate()
}

func ValidatePassword(fieldName string, password string) *errors.AppError {
	validator := NewValidator()
	validator.Field(fieldName, password).
		Required().
		MinLength(8, errors.ErrCodePasswordTooShort)
	return validator.Validate()
}
