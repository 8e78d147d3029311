package company

import (
	"net/http"

	"github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/transport"
	"github.com/tenanthub/company-management/pkg/logger"
)

type ServiceAPI interface {
	GetByID(id int64) (*Company, error)
	Update(id int64, dto *UpdateCompanyDTO) (*Company, error)
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

// GetCurrent returns the authenticated user's company.
func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	c, err := h.Service.GetByID(companyID)
	if err != nil {
		if err == ErrNotFound {
			h.WriteAppError(w, internal.ErrCompanyNotFound)
			return
		}
		h.Logger.Error("failed to load company", "company_id", companyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

// UpdateCurrent mutates the authenticated user's company.
func (h *Handler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	companyID := internal.CompanyIDFromContext(r.Context())
	if companyID == 0 {
		h.WriteError(w, http.StatusUnauthorized, "missing company scope")
		return
	}

	var dto UpdateCompanyDTO
	if appErr := transport.DecodeAndValidate(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	c, err := h.Service.Update(companyID, &dto)
	if err != nil {
		if err == ErrNotFound {
			h.WriteAppError(w, internal.ErrCompanyNotFound)
			return
		}
		h.Logger.Error("failed to update company", "company_id", companyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}
