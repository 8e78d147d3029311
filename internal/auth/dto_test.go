package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	errors "github.com/tenanthub/company-management/internal"
)

func fieldErrors(err *errors.AppError) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	if details, ok := err.Details.(errors.ValidationErrors); ok {
		for _, fe := range details.Errors {
			out[fe.Field] = fe.Code
		}
	}
	return out
}

var _ = ginkgo.Describe("LoginDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.Context("when all fields are valid", func() {
			ginkgo.It("should not return error", func() {
				// Given
				dto := LoginDTO{
					Email:    "user@example.com",
					Password: "secure_password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when the email carries surrounding whitespace", func() {
			ginkgo.It("should trim it before checking and keep the cleaned value", func() {
				// Given
				dto := LoginDTO{
					Email:    "  user@example.com  ",
					Password: "secure_password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
				gomega.Expect(dto.Email).To(gomega.Equal("user@example.com"))
			})
		})

		ginkgo.Context("when the email is wrapped in markup", func() {
			ginkgo.It("should strip the tags and accept the remaining address", func() {
				// Given
				dto := LoginDTO{
					Email:    "<b>user@example.com</b>",
					Password: "secure_password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
				gomega.Expect(dto.Email).To(gomega.Equal("user@example.com"))
			})

			ginkgo.It("should reject input that is only markup", func() {
				// Given
				dto := LoginDTO{
					Email:    "<script></script>",
					Password: "secure_password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(fieldErrors(err)).To(gomega.HaveKey("email"))
			})
		})

		ginkgo.Context("when the password is shorter than eight characters", func() {
			ginkgo.It("should return a password length error", func() {
				// Given
				dto := LoginDTO{
					Email:    "user@example.com",
					Password: "short12",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(fieldErrors(err)).To(gomega.HaveKeyWithValue("password", string(errors.ErrCodePasswordTooShort)))
			})
		})

		ginkgo.Context("when the password is exactly eight characters", func() {
			ginkgo.It("should accept it", func() {
				// Given
				dto := LoginDTO{
					Email:    "user@example.com",
					Password: "exactly8",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when multiple fields are invalid", func() {
			ginkgo.It("should collect one error per field", func() {
				// Given
				dto := LoginDTO{
					Email:    "invalid-email",
					Password: "short",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				fields := fieldErrors(err)
				gomega.Expect(fields).To(gomega.HaveKeyWithValue("email", string(errors.ErrCodeInvalidEmail)))
				gomega.Expect(fields).To(gomega.HaveKeyWithValue("password", string(errors.ErrCodePasswordTooShort)))
			})
		})

		ginkgo.Context("when email is empty", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := LoginDTO{
					Email:    "",
					Password: "secure_password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(err.Error()).To(gomega.Equal("email is required"))
			})
		})

		ginkgo.Context("when password is empty", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := LoginDTO{
					Email:    "user@example.com",
					Password: "",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(err.Error()).To(gomega.Equal("password is required"))
			})
		})
	})
})

var _ = ginkgo.Describe("RegisterDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.Context("when all fields are valid", func() {
			ginkgo.It("should not return error", func() {
				// Given
				dto := RegisterDTO{
					Email:       "founder@example.com",
					Password:    "secure_password",
					FirstName:   "Ada",
					LastName:    "Lovelace",
					CompanyName: "Analytical Engines Ltd",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when every required field is missing", func() {
			ginkgo.It("should report each missing field", func() {
				// Given
				dto := RegisterDTO{}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				fields := fieldErrors(err)
				gomega.Expect(fields).To(gomega.HaveKey("email"))
				gomega.Expect(fields).To(gomega.HaveKey("password"))
				gomega.Expect(fields).To(gomega.HaveKey("first_name"))
				gomega.Expect(fields).To(gomega.HaveKey("last_name"))
				gomega.Expect(fields).To(gomega.HaveKey("company_name"))
			})
		})

		ginkgo.Context("when the name fields carry whitespace", func() {
			ginkgo.It("should trim them in place", func() {
				// Given
				dto := RegisterDTO{
					Email:       "founder@example.com",
					Password:    "secure_password",
					FirstName:   "  Ada ",
					LastName:    " Lovelace  ",
					CompanyName: "  Analytical Engines Ltd ",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
				gomega.Expect(dto.FirstName).To(gomega.Equal("Ada"))
				gomega.Expect(dto.LastName).To(gomega.Equal("Lovelace"))
				gomega.Expect(dto.CompanyName).To(gomega.Equal("Analytical Engines Ltd"))
			})
		})

		ginkgo.Context("when the password is too short", func() {
			ginkgo.It("should reject seven characters and accept eight", func() {
				// Given
				short := RegisterDTO{
					Email:       "founder@example.com",
					Password:    "seven77",
					FirstName:   "Ada",
					LastName:    "Lovelace",
					CompanyName: "Analytical Engines Ltd",
				}
				exact := short
				exact.Password = "eight888"

				// When & Then
				gomega.Expect(fieldErrors(short.Validate())).To(gomega.HaveKeyWithValue("password", string(errors.ErrCodePasswordTooShort)))
				gomega.Expect(exact.Validate()).To(gomega.BeNil())
			})
		})
	})
})

var _ = ginkgo.Describe("JoinCompanyDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.Context("when all fields are valid", func() {
			ginkgo.It("should not return error", func() {
				// Given
				dto := JoinCompanyDTO{
					Token:     "6f1c1d9e-3f39-4a5d-9c57-0af0f2a6a001",
					Password:  "secure_password",
					FirstName: "Grace",
					LastName:  "Hopper",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when token is missing", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := JoinCompanyDTO{
					Password:  "secure_password",
					FirstName: "Grace",
					LastName:  "Hopper",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(fieldErrors(err)).To(gomega.HaveKey("token"))
			})
		})

		ginkgo.Context("when the password is shorter than eight characters", func() {
			ginkgo.It("should return a password length error", func() {
				// Given
				dto := JoinCompanyDTO{
					Token:     "6f1c1d9e-3f39-4a5d-9c57-0af0f2a6a001",
					Password:  "short",
					FirstName: "Grace",
					LastName:  "Hopper",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(fieldErrors(err)).To(gomega.HaveKeyWithValue("password", string(errors.ErrCodePasswordTooShort)))
			})
		})
	})
})

var _ = ginkgo.Describe("RefreshTokenDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.Context("when refresh token is provided", func() {
			ginkgo.It("should not return error", func() {
				// Given
				dto := RefreshTokenDTO{
					RefreshToken: "valid.jwt.token",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when refresh token is empty", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := RefreshTokenDTO{
					RefreshToken: "",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.BeNil())
				gomega.Expect(err.Error()).To(gomega.Equal("refresh_token is required"))
			})
		})
	})
})
