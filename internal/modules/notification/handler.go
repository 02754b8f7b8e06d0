package notification

import (
	"errors"
	"net/http"
	"strings"

	"castboard/internal/pkg/response"
	"castboard/internal/pkg/timezone"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications/shifts", h.Shifts)
	rg.POST("/notifications/shift-email", h.SendShiftEmail)
	rg.GET("/notifications/logs", h.EmailHistory)
}

// Shifts lists the notification-eligible shifts for ?date= with a
// composed draft each, ready for review before dispatch.
func (h *Handler) Shifts(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Today()
	}

	shifts, err := h.service.CompleteShifts(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load shifts")
		return
	}

	type shiftWithDraft struct {
		Shift
		Draft EmailDraft `json:"draft"`
	}
	out := make([]shiftWithDraft, 0, len(shifts))
	for _, shift := range shifts {
		out = append(out, shiftWithDraft{Shift: shift, Draft: h.service.ComposeShiftEmail(shift)})
	}
	response.Success(c, http.StatusOK, gin.H{"date": date, "shifts": out})
}

func (h *Handler) SendShiftEmail(c *gin.Context) {
	var req ShiftEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SendShiftEmail(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "SEND_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

// EmailHistory returns successful sends for ?emails=a@x.com,b@y.com.
func (h *Handler) EmailHistory(c *gin.Context) {
	var emails []string
	for _, email := range strings.Split(c.Query("emails"), ",") {
		if email = strings.TrimSpace(email); email != "" {
			emails = append(emails, email)
		}
	}

	logs, err := h.service.EmailHistory(c.Request.Context(), emails)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load email history")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logs": logs})
}
