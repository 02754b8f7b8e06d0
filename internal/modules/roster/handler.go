package roster

import (
	"errors"
	"net/http"
	"strconv"

	"castboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/voice-actors", h.ListActors)
	rg.POST("/voice-actors", h.CreateActor)
	rg.GET("/voice-actors/:id", h.GetActor)
	rg.PUT("/voice-actors/:id", h.UpdateActor)
	rg.DELETE("/voice-actors/:id", h.DeleteActor)

	rg.GET("/directors", h.ListDirectors)
	rg.POST("/directors", h.CreateDirector)
	rg.GET("/directors/:id", h.GetDirector)
	rg.PUT("/directors/:id", h.UpdateDirector)
	rg.DELETE("/directors/:id", h.DeleteDirector)

	rg.GET("/directors/:id/availability", h.WeeklyAvailability)
	rg.PUT("/directors/:id/availability", h.SetWeeklyAvailability)
	rg.DELETE("/availability/:id", h.DeleteWeeklyAvailability)

	rg.GET("/directors/:id/overrides", h.DateOverrides)
	rg.POST("/directors/:id/overrides", h.CreateDateOverride)
	rg.PUT("/overrides/:id", h.UpdateDateOverride)
	rg.DELETE("/overrides/:id", h.DeleteDateOverride)
}

func (h *Handler) ListActors(c *gin.Context) {
	actors, err := h.service.ListActors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load voice actors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voice_actors": actors})
}

func (h *Handler) GetActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, err := h.service.GetActor(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Voice actor not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voice_actor": actor})
}

func (h *Handler) CreateActor(c *gin.Context) {
	var req VoiceActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	actor, err := h.service.CreateActor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			response.Error(c, http.StatusConflict, "DUPLICATE_EMAIL", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create voice actor")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"voice_actor": actor})
}

func (h *Handler) UpdateActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req VoiceActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	actor, err := h.service.UpdateActor(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			response.Error(c, http.StatusConflict, "DUPLICATE_EMAIL", err.Error())
			return
		}
		notFoundOr500(c, err, "Voice actor not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voice_actor": actor})
}

func (h *Handler) DeleteActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteActor(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Voice actor not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListDirectors(c *gin.Context) {
	directors, err := h.service.ListDirectors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load directors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"directors": directors})
}

func (h *Handler) GetDirector(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	director, err := h.service.GetDirector(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"director": director})
}

func (h *Handler) CreateDirector(c *gin.Context) {
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	director, err := h.service.CreateDirector(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create director")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"director": director})
}

func (h *Handler) UpdateDirector(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	director, err := h.service.UpdateDirector(c.Request.Context(), id, req)
	if err != nil {
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"director": director})
}

func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDirector(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) WeeklyAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.service.WeeklyAvailability(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"availability": rows})
}

func (h *Handler) SetWeeklyAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req WeeklyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	row, err := h.service.SetWeeklyAvailability(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrInvalidWeekday) {
			response.Error(c, http.StatusBadRequest, "INVALID_WEEKDAY", err.Error())
			return
		}
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"availability": row})
}

func (h *Handler) DeleteWeeklyAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteWeeklyAvailability(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Availability not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) DateOverrides(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.service.DateOverrides(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"overrides": rows})
}

func (h *Handler) CreateDateOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	row, err := h.service.CreateDateOverride(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
			return
		}
		notFoundOr500(c, err, "Director not found")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"override": row})
}

func (h *Handler) UpdateDateOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	row, err := h.service.UpdateDateOverride(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", err.Error())
			return
		}
		notFoundOr500(c, err, "Override not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"override": row})
}

func (h *Handler) DeleteDateOverride(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDateOverride(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Override not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
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
