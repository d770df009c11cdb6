package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"factura/internal/service"
)

// ShareHandler handles share link endpoints, including the public resolver.
type ShareHandler struct {
	shareService service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// Create handles POST /api/v1/invoices/:id/shares
// @Summary Create a share link
// @Description Create a public share link for an invoice
// @Tags shares
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 201 {object} Response{data=service.ShareOutput} "Share created"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/shares [post]
func (h *ShareHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	out, err := h.shareService.Create(c.Request.Context(), userID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, out)
}

// ListByInvoice handles GET /api/v1/invoices/:id/shares
// @Summary List share links
// @Description List all share links for an invoice, including revoked ones
// @Tags shares
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=[]domain.InvoiceShare} "Share links"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/shares [get]
func (h *ShareHandler) ListByInvoice(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	shares, err := h.shareService.ListByInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, shares)
}

// Revoke handles POST /api/v1/shares/:id/revoke
// @Summary Revoke a share link
// @Description Deactivate a share link so its token stops resolving
// @Tags shares
// @Produce json
// @Param id path string true "Share ID"
// @Success 200 {object} Response{data=MessageResponse} "Share revoked"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Share not found"
// @Security BearerAuth
// @Router /shares/{id}/revoke [post]
func (h *ShareHandler) Revoke(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	shareID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.shareService.Revoke(c.Request.Context(), userID, shareID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "share revoked"})
}

// Delete handles DELETE /api/v1/shares/:id
// @Summary Delete a share link
// @Description Permanently delete a share link
// @Tags shares
// @Produce json
// @Param id path string true "Share ID"
// @Success 200 {object} Response{data=MessageResponse} "Share deleted"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Share not found"
// @Security BearerAuth
// @Router /shares/{id} [delete]
func (h *ShareHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	shareID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.shareService.Delete(c.Request.Context(), userID, shareID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "share deleted"})
}

// Resolve handles GET /api/v1/shared/:token
// @Summary Resolve a share link
// @Description Public endpoint: return the shared invoice for an active token and count the view
// @Tags shares
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} Response{data=domain.InvoiceWithLines} "Shared invoice"
// @Failure 404 {object} ErrorResponseBody "Share link not found or revoked"
// @Router /shared/{token} [get]
func (h *ShareHandler) Resolve(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		RespondError(c, http.StatusNotFound, "SHARE_NOT_FOUND", "share link not found or revoked")
		return
	}

	inv, err := h.shareService.ResolveToken(c.Request.Context(), token)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Send handles POST /api/v1/invoices/:id/send
// @Summary Email an invoice
// @Description Create a share link and email it to the recipient
// @Tags shares
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body service.SendInvoiceInput true "Recipient details"
// @Success 200 {object} Response{data=service.ShareOutput} "Invoice sent"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (h *ShareHandler) Send(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input service.SendInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.shareService.SendInvoice(c.Request.Context(), userID, invoiceID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}
