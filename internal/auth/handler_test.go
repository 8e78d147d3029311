package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/tenanthub/company-management/internal"
)

// Mock ServiceAPI for handler testing
type stubAuthService struct {
	joinTokens AuthTokens
	joinErr    error
}

func (s *stubAuthService) Authenticate(dto *LoginDTO) (AuthTokens, error) {
	return AuthTokens{}, ErrInvalidCredentials
}

func (s *stubAuthService) Register(dto *RegisterDTO) (AuthTokens, error) {
	return AuthTokens{}, nil
}

func (s *stubAuthService) JoinCompany(dto *JoinCompanyDTO) (AuthTokens, error) {
	if s.joinErr != nil {
		return AuthTokens{}, s.joinErr
	}
	return s.joinTokens, nil
}

func (s *stubAuthService) RefreshTokens(refreshToken string) (AuthTokens, error) {
	return AuthTokens{}, ErrInvalidToken
}

func (s *stubAuthService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return nil, ErrInvalidToken
}

func (s *stubAuthService) GetUserWithPermissions(userID int64) (*User, error) {
	return nil, nil
}

type errorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var _ = ginkgo.Describe("Auth Handler", func() {
	var (
		svc     *stubAuthService
		handler *Handler
	)

	ginkgo.BeforeEach(func() {
		svc = &stubAuthService{
			joinTokens: AuthTokens{AccessToken: "access", RefreshToken: "refresh"},
		}
		handler = NewHandler(svc)
	})

	postJoin := func() *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]string{
			"token":      "some-invitation-token",
			"password":   "longenough1",
			"first_name": "Jane",
			"last_name":  "Doe",
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, "/auth/join", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.Join(rec, req)
		return rec
	}

	decodeError := func(rec *httptest.ResponseRecorder) errorEnvelope {
		var envelope errorEnvelope
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(gomega.Succeed())
		return envelope
	}

	ginkgo.Describe("Join", func() {
		ginkgo.Context("when the invitation is valid", func() {
			ginkgo.It("should return the token pair with 201", func() {
				// When
				rec := postJoin()

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))

				var tokens AuthTokens
				gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &tokens)).To(gomega.Succeed())
				gomega.Expect(tokens.AccessToken).To(gomega.Equal("access"))
				gomega.Expect(tokens.RefreshToken).To(gomega.Equal("refresh"))
			})
		})

		ginkgo.Context("when the invitation has expired", func() {
			ginkgo.It("should return 400 with the expired code", func() {
				// Given
				svc.joinErr = internal.ErrInvitationExpired

				// When
				rec := postJoin()

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
				envelope := decodeError(rec)
				gomega.Expect(envelope.Error.Code).To(gomega.Equal(string(internal.ErrCodeInvitationExpired)))
			})
		})

		ginkgo.Context("when the invitation token is unknown", func() {
			ginkgo.It("should return 404 with the not-found code", func() {
				// Given
				svc.joinErr = internal.ErrInvitationNotFound

				// When
				rec := postJoin()

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
				envelope := decodeError(rec)
				gomega.Expect(envelope.Error.Code).To(gomega.Equal(string(internal.ErrCodeInvitationNotFound)))
			})
		})

		ginkgo.Context("when the invitation was already redeemed", func() {
			ginkgo.It("should return 409 with the already-used code", func() {
				// Given
				svc.joinErr = internal.ErrInvitationUsed

				// When
				rec := postJoin()

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusConflict))
				envelope := decodeError(rec)
				gomega.Expect(envelope.Error.Code).To(gomega.Equal(string(internal.ErrCodeInvitationUsed)))
			})
		})

		ginkgo.Context("when the invitation was revoked", func() {
			ginkgo.It("should return 409 with the revoked code", func() {
				// Given
				svc.joinErr = internal.ErrInvitationRevoked

				// When
				rec := postJoin()

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusConflict))
				envelope := decodeError(rec)
				gomega.Expect(envelope.Error.Code).To(gomega.Equal(string(internal.ErrCodeInvitationRevoked)))
			})
		})

		ginkgo.Context("when the email is already registered", func() {
			ginkgo.It("should return 409", func() {
				// Given
				svc.joinErr = ErrEmailTaken

				// When
				rec := postJoin()

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusConflict))
			})
		})
	})
})
