package handlers

import "github.com/gin-gonic/gin"

// SetRoutes mounts the REST API on r.
func (h *Handler) SetRoutes(r gin.IRouter) {
	cabinets := r.Group("/cabinets")
	{
		cabinets.GET("", h.ListCabinets)
		cabinets.POST("", h.CreateCabinet)
		cabinets.PUT("/:id", h.RenameCabinet)
		cabinets.DELETE("/:id", h.DeleteCabinet)
		cabinets.PATCH("/:id/reorder", h.ReorderCabinet)
	}

	queue := r.Group("/queue")
	{
		queue.GET("", h.ListQueue)
		queue.POST("", h.CreateEntry)
		queue.PATCH("/:id", h.UpdatePlayers)
		queue.DELETE("/:id", h.DeleteEntry)
		queue.POST("/:id/cycle", h.CycleEntry)
		queue.POST("/:id/move", h.MoveEntry)
	}

	r.GET("/health", h.Health)
	r.GET("/geofence", h.Geofence)
}
