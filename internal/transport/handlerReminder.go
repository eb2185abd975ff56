package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/nutritrack/notification-service/internal/entity"
	"github.com/nutritrack/notification-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	service service.ReminderUseCase
}

func NewReminderHandler(service service.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// TriggerScan runs one reminder tick on behalf of the external cron.
func (h *ReminderHandler) TriggerScan(c *gin.Context) {
	now := time.Now()

	report, err := h.service.ProcessDueReminders(c.Request.Context(), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    report.Sent,
		"failed":  report.Failed,
		"total":   report.Total,
		"time":    now.UTC().Format(time.RFC3339),
	})
}

// TriggerSweep runs a token sweep outside the daily cadence.
func (h *ReminderHandler) TriggerSweep(c *gin.Context) {
	now := time.Now()

	report, err := h.service.SweepTokens(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"checked": report.Checked,
		"cleaned": report.Cleaned,
		"time":    now.UTC().Format(time.RFC3339),
	})
}

// SendTest pushes a test notification to one user.
func (h *ReminderHandler) SendTest(c *gin.Context) {
	userID := c.Param("userId")

	err := h.service.SendTestNotification(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		case errors.Is(err, entity.ErrNoDeliveryToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No delivery token for this user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification sent"})
}
