package role

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/tenanthub/company-management/internal"
)

var _ = ginkgo.Describe("Role Handler", func() {
	var (
		mockRepo *mockRoleRepository
		handler  *Handler
		router   *chi.Mux
	)

	const companyID int64 = 10

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRoleRepository()
		handler = NewHandler(NewService(mockRepo))

		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := apperrors.ContextWithCompanyID(r.Context(), companyID)
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
		router.Post("/roles/{name}/permissions", handler.AttachPermission)
	})

	postAttach := func(roleName, permission string) *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]string{"permission": permission})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, "/roles/"+roleName+"/permissions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	errorCode := func(rec *httptest.ResponseRecorder) string {
		var envelope struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(gomega.Succeed())
		return envelope.Error.Code
	}

	ginkgo.Describe("AttachPermission", func() {
		ginkgo.BeforeEach(func() {
			gomega.Expect(mockRepo.CreateRole(&Role{CompanyID: companyID, Name: "auditor"})).To(gomega.Succeed())
			gomega.Expect(mockRepo.CreatePermission(&Permission{
				CompanyID: companyID, Name: "reports:read", Resource: "reports", Action: "read",
			})).To(gomega.Succeed())
		})

		ginkgo.Context("when role and permission exist in the company", func() {
			ginkgo.It("should link them and return 204", func() {
				// When
				rec := postAttach("auditor", "reports:read")

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNoContent))
				gomega.Expect(mockRepo.attached[1]).To(gomega.ConsistOf(int64(2)))
			})

			ginkgo.It("should trim surrounding whitespace from the permission name", func() {
				// When
				rec := postAttach("auditor", "  reports:read  ")

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNoContent))
				gomega.Expect(mockRepo.attached[1]).To(gomega.ConsistOf(int64(2)))
			})
		})

		ginkgo.Context("when the role does not exist", func() {
			ginkgo.It("should return 404 with the role code", func() {
				// When
				rec := postAttach("ghost", "reports:read")

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
				gomega.Expect(errorCode(rec)).To(gomega.Equal(string(apperrors.ErrCodeRoleNotFound)))
				gomega.Expect(mockRepo.attached).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when the permission does not exist", func() {
			ginkgo.It("should return 404 with the permission code", func() {
				// When
				rec := postAttach("auditor", "reports:delete")

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
				gomega.Expect(errorCode(rec)).To(gomega.Equal(string(apperrors.ErrCodePermNotFound)))
				gomega.Expect(mockRepo.attached).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when the permission field is missing", func() {
			ginkgo.It("should return 400", func() {
				// When
				rec := postAttach("auditor", "")

				// Then
				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
				gomega.Expect(mockRepo.attached).To(gomega.BeEmpty())
			})
		})
	})
})
