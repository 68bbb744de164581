package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"arcade_queue/internal/geofence"
	"arcade_queue/internal/response"
)

// Health godoc
// @Summary		Liveness probe
// @Description	Pings the store
// @Tags			system
// @Produce		json
// @Success		200	{object}	response.HealthResponse
// @Failure		500	{object}	response.HealthResponse
// @Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		log.WithError(err).Warn("health check failed")
		c.JSON(http.StatusInternalServerError, response.HealthResponse{Status: "error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}

// Geofence godoc
// @Summary		Advisory edit check
// @Description	Distance from the given point to the venue and whether edit controls should be offered. Nothing on the server enforces this.
// @Tags			system
// @Produce		json
// @Param			lat	query		number	true	"Latitude"
// @Param			lon	query		number	true	"Longitude"
// @Success		200	{object}	geofence.Decision
// @Failure		400	{object}	response.ErrorResponse	"Missing or out-of-range coordinate (INVALID_COORDINATE)"
// @Router			/geofence [get]
func (h *Handler) Geofence(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	point := geofence.Coordinate{Lat: lat, Lon: lon}

	var err error
	switch {
	case errLat != nil:
		err = errLat
	case errLon != nil:
		err = errLon
	default:
		err = point.Validate()
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_COORDINATE",
			Message: "lat and lon must be valid coordinates",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, h.gate.Check(point))
}
