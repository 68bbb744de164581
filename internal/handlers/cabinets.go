package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arcade_queue/internal/response"
	"arcade_queue/internal/snapshot"
)

type CabinetRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Pac-Man"`
}

type ReorderRequest struct {
	NewOrder []uint `json:"new_order" binding:"required,min=1" example:"3,2"`
}

// ListCabinets godoc
// @Summary		List cabinets
// @Description	Returns every cabinet with its queue in position order, plus the derived current session and waiting queue
// @Tags			cabinets
// @Produce		json
// @Success		200	{array}		snapshot.CabinetView
// @Failure		500	{object}	response.ErrorResponse	"Store failure (DB_ERROR)"
// @Router			/cabinets [get]
func (h *Handler) ListCabinets(c *gin.Context) {
	cabinets, err := h.svc.ListCabinets(c.Request.Context())
	if err != nil {
		writeError(c, err, "CABINET_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, snapshot.ForCabinets(cabinets))
}

// CreateCabinet godoc
// @Summary		Create a cabinet
// @Tags			cabinets
// @Accept			json
// @Produce		json
// @Param			body	body		CabinetRequest	true	"Cabinet name"
// @Success		201		{object}	models.Cabinet
// @Failure		422		{object}	response.ErrorResponse	"Invalid name (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Store failure (DB_ERROR)"
// @Router			/cabinets [post]
func (h *Handler) CreateCabinet(c *gin.Context) {
	var req CabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cabinet, err := h.svc.CreateCabinet(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err, "CABINET_NOT_FOUND")
		return
	}
	c.JSON(http.StatusCreated, cabinet)
}

// RenameCabinet godoc
// @Summary		Rename a cabinet
// @Tags			cabinets
// @Accept			json
// @Produce		json
// @Param			id		path		int				true	"Cabinet ID"
// @Param			body	body		CabinetRequest	true	"New name"
// @Success		200		{object}	models.Cabinet
// @Failure		400		{object}	response.ErrorResponse	"Malformed id (INVALID_ID)"
// @Failure		404		{object}	response.ErrorResponse	"No such cabinet (CABINET_NOT_FOUND)"
// @Failure		422		{object}	response.ErrorResponse	"Invalid name (VALIDATION_ERROR)"
// @Router			/cabinets/{id} [put]
func (h *Handler) RenameCabinet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CabinetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cabinet, err := h.svc.RenameCabinet(c.Request.Context(), id, req.Name)
	if err != nil {
		writeError(c, err, "CABINET_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, cabinet)
}

// DeleteCabinet godoc
// @Summary		Delete a cabinet
// @Description	Deletes the cabinet and every entry in its queue. Deleting a missing cabinet succeeds.
// @Tags			cabinets
// @Produce		json
// @Param			id	path		int	true	"Cabinet ID"
// @Success		200	{object}	response.MessageResponse
// @Failure		400	{object}	response.ErrorResponse	"Malformed id (INVALID_ID)"
// @Failure		500	{object}	response.ErrorResponse	"Store failure (DB_ERROR)"
// @Router			/cabinets/{id} [delete]
func (h *Handler) DeleteCabinet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCabinet(c.Request.Context(), id); err != nil {
		writeError(c, err, "CABINET_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Deleted"})
}

// ReorderCabinet godoc
// @Summary		Reorder a cabinet's waiting queue
// @Description	Redistributes the positions held by the listed entries so they follow new_order front to back. Unlisted entries keep their positions.
// @Tags			cabinets
// @Accept			json
// @Produce		json
// @Param			id		path		int				true	"Cabinet ID"
// @Param			body	body		ReorderRequest	true	"Entry ids, front to back"
// @Success		200		{object}	response.MessageResponse
// @Failure		404		{object}	response.ErrorResponse	"No such cabinet (CABINET_NOT_FOUND)"
// @Failure		422		{object}	response.ErrorResponse	"Unknown or duplicate entry id (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Transaction aborted (DB_ERROR)"
// @Router			/cabinets/{id}/reorder [patch]
func (h *Handler) ReorderCabinet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), id, req.NewOrder); err != nil {
		writeError(c, err, "CABINET_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Reordered"})
}
