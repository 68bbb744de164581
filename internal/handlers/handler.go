package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"arcade_queue/internal/geofence"
	"arcade_queue/internal/queue"
	"arcade_queue/internal/response"
)

// PingFunc checks the store for GET /health.
type PingFunc func(ctx context.Context) error

type Handler struct {
	svc  *queue.Service
	gate geofence.Gate
	ping PingFunc
}

func New(svc *queue.Service, gate geofence.Gate, ping PingFunc) *Handler {
	return &Handler{svc: svc, gate: gate, ping: ping}
}

// pathID parses a positive integer path parameter, writing a 400 when it
// does not parse.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_ID",
			Message: "Invalid " + name,
			Details: c.Param(name),
		})
		return 0, false
	}
	return uint(id), true
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request body",
		Details: err.Error(),
	})
}

// writeError maps service errors onto the API's status codes.
func writeError(c *gin.Context, err error, notFoundCode string) {
	var ve *queue.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: ve.Error(),
			Details: ve.Field,
		})
	case errors.Is(err, queue.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    notFoundCode,
			Message: err.Error(),
		})
	default:
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Internal error",
			Details: err.Error(),
		})
	}
}
