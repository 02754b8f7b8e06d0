package catalog

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
	rg.GET("/studios", h.ListStudios)
	rg.POST("/studios", h.CreateStudio)
	rg.GET("/studios/:id", h.GetStudio)
	rg.PUT("/studios/:id", h.UpdateStudio)
	rg.DELETE("/studios/:id", h.DeleteStudio)

	rg.GET("/studios/:id/rooms", h.ListRooms)
	rg.POST("/studios/:id/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *Handler) ListStudios(c *gin.Context) {
	studios, err := h.service.ListStudios(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load studios")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"studios": studios})
}

func (h *Handler) GetStudio(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	studio, err := h.service.GetStudio(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Studio not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"studio": studio})
}

func (h *Handler) CreateStudio(c *gin.Context) {
	var req StudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	studio, err := h.service.CreateStudio(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create studio")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"studio": studio})
}

func (h *Handler) UpdateStudio(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req StudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	studio, err := h.service.UpdateStudio(c.Request.Context(), id, req)
	if err != nil {
		notFoundOr500(c, err, "Studio not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"studio": studio})
}

func (h *Handler) DeleteStudio(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteStudio(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Studio not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListRooms(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), id)
	if err != nil {
		notFoundOr500(c, err, "Studio not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), id, req)
	if err != nil {
		notFoundOr500(c, err, "Studio not found")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		notFoundOr500(c, err, "Room not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		notFoundOr500(c, err, "Room not found")
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
