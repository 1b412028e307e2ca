package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goplan-erp/internal/usecase/interfaces"
	"goplan-erp/pkg"
)

// MasterDataHandler serves the read-only catalogs (teams, employees,
// holidays) the scheduling estimator draws from. The lists are small and
// tenant-scoped, so the handler talks to the repository directly.

type MasterDataHandler struct {
	repo interfaces.IMasterDataRepository
}

func NewMasterDataHandler(repo interfaces.IMasterDataRepository) *MasterDataHandler {
	return &MasterDataHandler{repo: repo}
}

func (h *MasterDataHandler) ListTeams(c *gin.Context) {
	teams, err := h.repo.ListTeams(c.Request.Context(), tenantID(c))
	if err != nil {
		log.Printf("[masterdata][handler] list teams failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, teams)
}

func (h *MasterDataHandler) ListEmployees(c *gin.Context) {
	employees, err := h.repo.ListEmployees(c.Request.Context(), tenantID(c))
	if err != nil {
		log.Printf("[masterdata][handler] list employees failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *MasterDataHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.repo.ListHolidays(c.Request.Context(), tenantID(c))
	if err != nil {
		log.Printf("[masterdata][handler] list holidays failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, holidays)
}
