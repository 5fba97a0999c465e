package handler

import (
	"fmt"
	"net/http"

	"github.com/spimentel1201/RepairServiceAPI/internal/apierror"
	"github.com/spimentel1201/RepairServiceAPI/internal/config"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/infra"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type InvoicesHandler struct {
	svc    service.InvoiceService
	mailer *infra.Mailer
	cfg    *config.Config
}

func NewInvoicesHandler(svc service.InvoiceService, mailer *infra.Mailer, cfg *config.Config) *InvoicesHandler {
	return &InvoicesHandler{svc: svc, mailer: mailer, cfg: cfg}
}

// Get godoc
// @Summary      Get the invoice of a sale
// @Description  Derives the invoice from the persisted sale. Subtotal and tax are computed from the tax-inclusive total; nothing is stored.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sale UUID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/{id}/invoice [get]
func (h *InvoicesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	inv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Download godoc
// @Summary      Download the invoice as PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Sale UUID"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/{id}/invoice/pdf [get]
func (h *InvoicesHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	inv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateInvoicePDF(inv, h.cfg.ShopName, h.cfg.PDFStoragePath)
	if err != nil {
		log.Error().Err(err).Str("sale_id", id.String()).Msg("invoice pdf generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate invoice pdf"))
		return
	}
	c.FileAttachment(path, inv.InvoiceNumber+".pdf")
}

// Email godoc
// @Summary      Email the invoice PDF to an address
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "Sale UUID"
// @Param        body body dto.EmailInvoiceRequest true "Recipient"
// @Success      200  {object} map[string]string
// @Failure      404  {object} apierror.APIError
// @Router       /v1/sales/{id}/invoice/email [post]
func (h *InvoicesHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.EmailInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	inv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateInvoicePDF(inv, h.cfg.ShopName, h.cfg.PDFStoragePath)
	if err != nil {
		log.Error().Err(err).Str("sale_id", id.String()).Msg("invoice pdf generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate invoice pdf"))
		return
	}
	subject := fmt.Sprintf("%s - invoice %s", h.cfg.ShopName, inv.InvoiceNumber)
	body := fmt.Sprintf("Attached is invoice %s for a total of %s.", inv.InvoiceNumber, inv.Total.StringFixed(2))
	if err := h.mailer.SendInvoice(req.To, subject, body, path); err != nil {
		log.Error().Err(err).Str("to", req.To).Msg("invoice email failed")
		c.JSON(http.StatusInternalServerError, apierror.New("failed to send invoice email"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent", "to": req.To})
}
