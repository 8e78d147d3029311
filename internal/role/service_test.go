package role

import (
	"errors"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/tenanthub/company-management/internal"
)

func TestRole(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Role Module Suite")
}

// Mock RepositoryAPI for testing
type mockRoleRepository struct {
	roles         []*Role
	permissions   []*Permission
	attached      map[int64][]int64 // roleID -> permissionIDs
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockRoleRepository() *mockRoleRepository {
	return &mockRoleRepository{
		attached: map[int64][]int64{},
	}
}

func (m *mockRoleRepository) ListRoles(companyID int64) ([]*Role, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	var out []*Role
	for _, r := range m.roles {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRoleRepository) GetRoleByName(companyID int64, name string) (*Role, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, r := range m.roles {
		if r.CompanyID == companyID && r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockRoleRepository) CreateRole(r *Role) error {
	if m.returnError {
		return m.errorToReturn
	}
	m.nextID++
	r.ID = m.nextID
	m.roles = append(m.roles, r)
	return nil
}

func (m *mockRoleRepository) ListPermissions(companyID int64) ([]*Permission, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	var out []*Permission
	for _, p := range m.permissions {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRoleRepository) GetPermissionByName(companyID int64, name string) (*Permission, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, p := range m.permissions {
		if p.CompanyID == companyID && p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockRoleRepository) CreatePermission(p *Permission) error {
	if m.returnError {
		return m.errorToReturn
	}
	m.nextID++
	p.ID = m.nextID
	m.permissions = append(m.permissions, p)
	return nil
}

func (m *mockRoleRepository) AttachPermission(roleID, permissionID int64) error {
	if m.returnError {
		return m.errorToReturn
	}
	m.attached[roleID] = append(m.attached[roleID], permissionID)
	return nil
}

var _ = ginkgo.Describe("RoleService", func() {
	var (
		service  *Service
		mockRepo *mockRoleRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRoleRepository()
		service = NewService(mockRepo)
	})

	ginkgo.Describe("CreateRole", func() {
		ginkgo.It("should create a company-scoped role", func() {
			// When
			r, err := service.CreateRole(10, &CreateRoleDTO{Name: "support", Description: "Support staff"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(r.ID).ToNot(gomega.BeZero())
			gomega.Expect(r.CompanyID).To(gomega.Equal(int64(10)))
			gomega.Expect(r.Name).To(gomega.Equal("support"))
		})

		ginkgo.It("should reject a duplicate name within the company", func() {
			// Given
			_, err := service.CreateRole(10, &CreateRoleDTO{Name: "support"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			r, err := service.CreateRole(10, &CreateRoleDTO{Name: "support"})

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrRoleExists))
			gomega.Expect(r).To(gomega.BeNil())
		})

		ginkgo.It("should allow the same name in a different company", func() {
			// Given
			_, err := service.CreateRole(10, &CreateRoleDTO{Name: "support"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			r, err := service.CreateRole(20, &CreateRoleDTO{Name: "support"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(r.CompanyID).To(gomega.Equal(int64(20)))
		})
	})

	ginkgo.Describe("CreatePermission", func() {
		ginkgo.It("should create a company-scoped permission", func() {
			// When
			p, err := service.CreatePermission(10, &CreatePermissionDTO{
				Name:     "reports:read",
				Resource: "reports",
				Action:   "read",
			})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(p.ID).ToNot(gomega.BeZero())
			gomega.Expect(p.Resource).To(gomega.Equal("reports"))
			gomega.Expect(p.Action).To(gomega.Equal("read"))
		})

		ginkgo.It("should reject a duplicate name within the company", func() {
			// Given
			_, err := service.CreatePermission(10, &CreatePermissionDTO{Name: "reports:read", Resource: "reports", Action: "read"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			p, err := service.CreatePermission(10, &CreatePermissionDTO{Name: "reports:read", Resource: "reports", Action: "read"})

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrPermExists))
			gomega.Expect(p).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("AttachPermission", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.CreateRole(10, &CreateRoleDTO{Name: "support"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			_, err = service.CreatePermission(10, &CreatePermissionDTO{Name: "reports:read", Resource: "reports", Action: "read"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should link an existing permission to an existing role", func() {
			// When
			err := service.AttachPermission(10, "support", "reports:read")

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.attached).To(gomega.HaveLen(1))
		})

		ginkgo.It("should return ErrRoleNotFound for an unknown role", func() {
			gomega.Expect(service.AttachPermission(10, "nonexistent", "reports:read")).To(gomega.Equal(ErrRoleNotFound))
		})

		ginkgo.It("should return ErrPermNotFound for an unknown permission", func() {
			gomega.Expect(service.AttachPermission(10, "support", "nonexistent")).To(gomega.Equal(ErrPermNotFound))
		})

		ginkgo.It("should not cross company boundaries", func() {
			gomega.Expect(service.AttachPermission(20, "support", "reports:read")).To(gomega.Equal(ErrRoleNotFound))
		})
	})

	ginkgo.Describe("ListRoles", func() {
		ginkgo.It("should propagate repository errors", func() {
			// Given
			mockRepo.returnError = true
			mockRepo.errorToReturn = errors.New("database error")

			// When
			roles, err := service.ListRoles(10)

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(roles).To(gomega.BeNil())
		})
	})
})

var _ = ginkgo.Describe("CreatePermissionDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.It("should accept a well-formed permission", func() {
			// Given
			dto := CreatePermissionDTO{Name: "reports:read", Resource: "reports", Action: "read"}

			// When & Then
			gomega.Expect(dto.Validate()).To(gomega.BeNil())
		})

		ginkgo.It("should reject an action outside the allowed verbs", func() {
			// Given
			dto := CreatePermissionDTO{Name: "reports:read", Resource: "reports", Action: "browse"}

			// When
			err := dto.Validate()

			// Then
			gomega.Expect(err).ToNot(gomega.BeNil())
			details, ok := err.Details.(apperrors.ValidationErrors)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(details.Errors[0].Field).To(gomega.Equal("action"))
		})

		ginkgo.It("should strip markup from the description", func() {
			// Given
			dto := CreatePermissionDTO{
				Name:        "reports:read",
				Description: "<script>alert(1)</script>Read-only reports",
				Resource:    "reports",
				Action:      "read",
			}

			// When
			err := dto.Validate()

			// Then
			gomega.Expect(err).To(gomega.BeNil())
			gomega.Expect(dto.Description).To(gomega.Equal("alert(1)Read-only reports"))
		})
	})
})
