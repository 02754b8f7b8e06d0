package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"castboard/internal/pkg/response"
	"castboard/internal/pkg/timezone"
	"castboard/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", h.Day)
	rg.GET("/schedule/dates", h.Dates)
	rg.GET("/schedule/ws", h.WebSocket)

	rg.POST("/bookings", h.SaveBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)

	rg.GET("/schedules", h.ListSaved)
	rg.POST("/schedules", h.SaveSchedule)
	rg.GET("/schedules/:id", h.GetSaved)
	rg.DELETE("/schedules/:id", h.DeleteSaved)
}

// Day returns the grid payload for ?date=, defaulting to today in
// Pacific time.
func (h *Handler) Day(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Today()
	}

	day, err := h.service.LoadDay(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load schedule")
		return
	}
	response.Success(c, http.StatusOK, day)
}

func (h *Handler) Dates(c *gin.Context) {
	dates, err := h.service.BookingDates(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load booking dates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dates": dates})
}

func (h *Handler) SaveBooking(c *gin.Context) {
	var req SaveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, err := h.service.SaveBooking(c.Request.Context(), req)
	if err != nil {
		h.saveError(c, err)
		return
	}

	dates, err := h.service.BookingDates(c.Request.Context())
	if err != nil {
		dates = nil
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking, "dates": dates})
}

func (h *Handler) saveError(c *gin.Context, err error) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT", conflict.Error(), gin.H{
			"voice_actor_id": conflict.VoiceActorID,
			"position":       conflict.Position,
			"slot_type":      conflict.Slot,
			"room":           conflict.RoomLabel,
			"booking_id":     conflict.BookingID,
		})
	case errors.Is(err, repository.ErrDuplicateSlot):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Booking slot already taken")
	case errors.Is(err, ErrInvalidSlot),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrSecondActorRequired),
		errors.Is(err, ErrDirectorRequired),
		errors.Is(err, ErrSelfPairing):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room or booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save booking")
	}
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Booking not found")
		return
	}

	dates, err := h.service.BookingDates(c.Request.Context())
	if err != nil {
		dates = nil
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id, "dates": dates})
}

func (h *Handler) ListSaved(c *gin.Context) {
	schedules, err := h.service.ListSaved(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load saved schedules")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedules": schedules})
}

func (h *Handler) SaveSchedule(c *gin.Context) {
	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var createdBy *string
	if email := c.GetString("staff_email"); email != "" {
		createdBy = &email
	}

	schedule, err := h.service.SaveSchedule(c.Request.Context(), req, createdBy)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save schedule")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"schedule": schedule})
}

func (h *Handler) GetSaved(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.service.GetSaved(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Saved schedule not found")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) DeleteSaved(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSaved(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Saved schedule not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) WebSocket(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func notFoundOr500(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", message)
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
}
