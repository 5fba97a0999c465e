package handler

import (
	"net/http"

	"github.com/spimentel1201/RepairServiceAPI/internal/apierror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/middleware"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuotesHandler struct{ svc service.QuoteService }

func NewQuotesHandler(svc service.QuoteService) *QuotesHandler { return &QuotesHandler{svc: svc} }

// Create godoc
// @Summary      Create a quote
// @Description  Captures current catalog prices without touching stock. The quote expires after the requested number of days.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateQuoteRequest true "Quote detail"
// @Success      201 {object} dto.QuoteResponse
// @Router       /v1/quotes [post]
func (h *QuotesHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	userID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Get a quote by id
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quote UUID"
// @Success      200 {object} dto.QuoteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotes/{id} [get]
func (h *QuotesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "PENDING | ACCEPTED | REJECTED | EXPIRED"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.QuoteListResponse
// @Router       /v1/quotes [get]
func (h *QuotesHandler) List(c *gin.Context) {
	var filter dto.QuoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list quotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Change quote status
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                       true "Quote UUID"
// @Param        body body dto.UpdateQuoteStatusRequest true "New status"
// @Success      200  {object} dto.QuoteResponse
// @Router       /v1/quotes/{id}/status [patch]
func (h *QuotesHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateQuoteStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a quote
// @Description  Quotes never held stock, so deletion has no inventory effect.
// @Tags         quotes
// @Security     BearerAuth
// @Param        id path string true "Quote UUID"
// @Success      204
// @Router       /v1/quotes/{id} [delete]
func (h *QuotesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
