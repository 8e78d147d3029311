package invitation

import (
	errors "github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/auth"
	"github.com/tenanthub/company-management/internal/core/validation"
)

// CreateInvitationDTO invites an email into the caller's company.
// The assigned role defaults to USER when omitted.
type CreateInvitationDTO struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func (d *CreateInvitationDTO) Validate() *errors.AppError {
	if d.Role == "" {
		d.Role = auth.RoleUser
	}

	v := validation.NewValidator()
	v.StringField("email", &d.Email).
		Trim().
		StripTags().
		Required().
		Email()
	v.Field("role", d.Role).
		OneOf(auth.SystemRoles, errors.ErrCodeInvalidRole)
	return v.Validate()
}
