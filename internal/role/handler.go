package role

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/transport"
	"github.com/tenanthub/company-management/pkg/logger"
)

type ServiceAPI interface {
	ListRoles(companyID int64) ([]*Role, error)
	CreateRole(companyID int64, dto *CreateRoleDTO) (*Role, error)
	ListPermissions(companyID int64) ([]*Permission, error)
	CreatePermission(companyID int64, dto *CreatePermissionDTO) (*Permission, error)
	AttachPermission(companyID int64, roleName, permName string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	roles, err := h.Service.ListRoles(companyID)
	if err != nil {
		h.Logger.Error("failed to list roles", "company_id", companyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"roles": roles})
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	var dto CreateRoleDTO
	if appErr := transport.DecodeAndValidate(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	created, err := h.Service.CreateRole(companyID, &dto)
	if err != nil {
		if err == ErrRoleExists {
			h.WriteAppError(w, internal.NewConflictError("Role already exists", internal.ErrCodeRoleExists))
			return
		}
		h.Logger.Error("failed to create role", "company_id", companyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

// AttachPermission grants an existing permission to a role of the
// caller's company.
func (h *Handler) AttachPermission(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	roleName := chi.URLParam(r, "name")

	var dto AttachPermissionDTO
	if appErr := transport.DecodeAndValidate(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	if err := h.Service.AttachPermission(companyID, roleName, dto.Permission); err != nil {
		switch err {
		case ErrRoleNotFound:
			h.WriteAppError(w, internal.NewNotFoundError("Role not found", internal.ErrCodeRoleNotFound))
		case ErrPermNotFound:
			h.WriteAppError(w, internal.NewNotFoundError("Permission not found", internal.ErrCodePermNotFound))
		default:
			h.Logger.Error("failed to attach permission", "company_id", companyID, "role", roleName, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	perms, err := h.Service.ListPermissions(companyID)
	if err != nil {
		h.Logger.Error("failed to list permissions", "company_id", companyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"permissions": perms})
}

func (h *Handler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	var dto CreatePermissionDTO
	if appErr := transport.DecodeAndValidate(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	created, err := h.Service.CreatePermission(companyID, &dto)
	if err != nil {
		if err == ErrPermExists {
			h.WriteAppError(w, internal.NewConflictError("Permission already exists", internal.ErrCodePermExists))
			return
		}
		h.Logger.Error("failed to create permission", "company_id", companyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}
