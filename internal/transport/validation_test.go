package transport

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/tenanthub/company-management/internal"
)

func TestTransport(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Transport Module Suite")
}

type stubDTO struct {
	Name string `json:"name"`

	validateErr *internal.AppError
	panicOnIt   bool
}

func (d *stubDTO) Validate() *internal.AppError {
	if d.panicOnIt {
		panic("constraint check blew up")
	}
	return d.validateErr
}

var _ = ginkgo.Describe("DecodeAndValidate", func() {
	ginkgo.Context("when the body is well-formed and the DTO is valid", func() {
		ginkgo.It("should decode into the DTO and return nil", func() {
			// Given
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ok"}`))
			dto := &stubDTO{}

			// When
			err := DecodeAndValidate(req, dto)

			// Then
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(dto.Name).To(gomega.Equal("ok"))
		})
	})

	ginkgo.Context("when the body is not valid JSON", func() {
		ginkgo.It("should return a validation error, not a decoder error", func() {
			// Given
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))

			// When
			err := DecodeAndValidate(req, &stubDTO{})

			// Then
			gomega.Expect(err).ToNot(gomega.BeNil())
			gomega.Expect(err.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			gomega.Expect(err.StatusCode).To(gomega.Equal(400))
		})
	})

	ginkgo.Context("when the DTO reports field errors", func() {
		ginkgo.It("should pass the structured error through untouched", func() {
			// Given
			fieldErr := internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
			dto := &stubDTO{validateErr: fieldErr}

			// When
			err := DecodeAndValidate(req, dto)

			// Then
			gomega.Expect(err).To(gomega.Equal(fieldErr))
		})
	})

	ginkgo.Context("when validation itself panics", func() {
		ginkgo.It("should fall back to a generic validation failure", func() {
			// Given
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"boom"}`))
			dto := &stubDTO{panicOnIt: true}

			// When
			err := DecodeAndValidate(req, dto)

			// Then
			gomega.Expect(err).ToNot(gomega.BeNil())
			gomega.Expect(err.Message).To(gomega.Equal("Validation failed"))
			gomega.Expect(err.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
			gomega.Expect(err.StatusCode).To(gomega.Equal(400))
		})
	})
})
