// Package webhook is the HTTP transport: one Twilio-style form POST per
// inbound WhatsApp message.
package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docinho/internal/intake"
)

type Handler struct {
	svc *intake.Service
}

func NewHandler(svc *intake.Service) *Handler {
	return &Handler{svc: svc}
}

// Receive handles the provider callback. The 200 body reports what the
// message was classified as; the sender-facing result travels over WhatsApp.
func (h *Handler) Receive(c *gin.Context) {
	msg := intake.InboundMessage{
		Provider:   "twilio",
		MessageSID: c.PostForm("MessageSid"),
		From:       c.PostForm("From"),
		Body:       c.PostForm("Body"),
	}
	if msg.MessageSID == "" {
		// Some test senders omit the SID; fall back to body identity so the
		// journal unique key still holds.
		msg.MessageSID = msg.From + "|" + msg.Body
	}

	outcome, err := h.svc.Handle(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "type": outcome.Type})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "docinho"})
}
