package invitation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/auth"
	"github.com/tenanthub/company-management/internal/transport"
	"github.com/tenanthub/company-management/pkg/logger"
)

type ServiceAPI interface {
	Create(companyID, invitedBy int64, dto *CreateInvitationDTO) (*Invitation, error)
	ListByCompany(companyID int64) ([]*Invitation, error)
	Revoke(companyID, invitationID int64) error
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

func (h *Handler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateInvitationDTO
	if appErr := transport.DecodeAndValidate(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	inv, err := h.Service.Create(principal.CompanyID, principal.ID, &dto)
	if err != nil {
		h.Logger.Error("failed to create invitation", "company_id", principal.CompanyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusCreated, inv)
}

func (h *Handler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	invitations, err := h.Service.ListByCompany(principal.CompanyID)
	if err != nil {
		h.Logger.Error("failed to list invitations", "company_id", principal.CompanyID, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"invitations": invitations,
		"total":       len(invitations),
	})
}

func (h *Handler) RevokeInvitation(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid invitation id")
		return
	}

	if err := h.Service.Revoke(principal.CompanyID, id); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			h.WriteAppError(w, appErr)
			return
		}
		h.Logger.Error("failed to revoke invitation", "invitation_id", id, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
