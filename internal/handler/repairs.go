package handler

import (
	"net/http"

	"github.com/spimentel1201/RepairServiceAPI/internal/apierror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RepairsHandler struct{ svc service.RepairService }

func NewRepairsHandler(svc service.RepairService) *RepairsHandler {
	return &RepairsHandler{svc: svc}
}

// Create godoc
// @Summary      Open a repair order
// @Tags         repairs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateRepairOrderRequest true "Device intake"
// @Success      201 {object} dto.RepairOrderResponse
// @Router       /v1/repairs [post]
func (h *RepairsHandler) Create(c *gin.Context) {
	var req dto.CreateRepairOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Get a repair order by id
// @Tags         repairs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Repair order UUID"
// @Success      200 {object} dto.RepairOrderResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/repairs/{id} [get]
func (h *RepairsHandler) Get(c *gin.Context) {
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
// @Summary      List repair orders
// @Tags         repairs
// @Produce      json
// @Security     BearerAuth
// @Param        status        query string false "RECEIVED | DIAGNOSED | IN_REPAIR | READY | DELIVERED | CANCELLED"
// @Param        technician_id query string false "Filter by technician UUID"
// @Param        page          query int    false "Page (default 1)"
// @Param        limit         query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.RepairListResponse
// @Router       /v1/repairs [get]
func (h *RepairsHandler) List(c *gin.Context) {
	var filter dto.RepairFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list repair orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update a repair order
// @Description  Updates diagnosis, estimated cost and technician assignment. Status changes go through the status endpoint.
// @Tags         repairs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                       true "Repair order UUID"
// @Param        body body dto.UpdateRepairOrderRequest true "Fields to change"
// @Success      200  {object} dto.RepairOrderResponse
// @Router       /v1/repairs/{id} [put]
func (h *RepairsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateRepairOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Advance a repair order through its status machine
// @Description  RECEIVED -> DIAGNOSED -> IN_REPAIR -> READY -> DELIVERED. Any non-terminal state may move to CANCELLED. Everything else is rejected.
// @Tags         repairs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                        true "Repair order UUID"
// @Param        body body dto.UpdateRepairStatusRequest true "Target status"
// @Success      200  {object} dto.RepairOrderResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/repairs/{id}/status [patch]
func (h *RepairsHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateRepairStatusRequest
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
