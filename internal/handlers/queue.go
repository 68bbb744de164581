package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arcade_queue/internal/models"
	"arcade_queue/internal/queue"
	"arcade_queue/internal/response"
)

type CreateEntryRequest struct {
	CabinetID uint             `json:"cabinet_id" binding:"required" example:"1"`
	Type      models.EntryType `json:"type" binding:"required,oneof=solo duo" example:"duo"`
	Players   []string         `json:"players" binding:"required,min=1,max=2" example:"Bob,Cara"`
}

type MoveRequest struct {
	TargetCabinetID uint `json:"target_cabinet_id" example:"2"`
}

type UpdatePlayersRequest struct {
	Players []string `json:"players" binding:"required,min=1,max=2" example:"Bob,Dana"`
}

// ListQueue godoc
// @Summary		List all queue entries
// @Description	Every entry of every cabinet with its cabinet, sorted by position
// @Tags			queue
// @Produce		json
// @Success		200	{array}		models.QueueEntry
// @Failure		500	{object}	response.ErrorResponse	"Store failure (DB_ERROR)"
// @Router			/queue [get]
func (h *Handler) ListQueue(c *gin.Context) {
	entries, err := h.svc.ListEntries(c.Request.Context())
	if err != nil {
		writeError(c, err, "ENTRY_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateEntry godoc
// @Summary		Add an entry to a cabinet's queue
// @Description	Appends a solo or duo entry at the back of the cabinet's queue
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			body	body		CreateEntryRequest	true	"Entry"
// @Success		201		{object}	models.QueueEntry
// @Failure		422		{object}	response.ErrorResponse	"Bad type, player count or cabinet (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Store failure (DB_ERROR)"
// @Router			/queue [post]
func (h *Handler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	entry, err := h.svc.CreateEntry(c.Request.Context(), queue.CreateEntryInput{
		CabinetID: req.CabinetID,
		Type:      req.Type,
		Players:   req.Players,
	})
	if err != nil {
		writeError(c, err, "CABINET_NOT_FOUND")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DeleteEntry godoc
// @Summary		Remove an entry
// @Description	Deleting a missing entry succeeds.
// @Tags			queue
// @Produce		json
// @Param			id	path		int	true	"Entry ID"
// @Success		200	{object}	response.MessageResponse
// @Failure		400	{object}	response.ErrorResponse	"Malformed id (INVALID_ID)"
// @Router			/queue/{id} [delete]
func (h *Handler) DeleteEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEntry(c.Request.Context(), id); err != nil {
		writeError(c, err, "ENTRY_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Deleted"})
}

// CycleEntry godoc
// @Summary		Send an entry to the back of its queue
// @Description	Used when the current session finishes. A missing entry is ignored.
// @Tags			queue
// @Produce		json
// @Param			id	path		int	true	"Entry ID"
// @Success		200	{object}	response.MessageResponse
// @Failure		400	{object}	response.ErrorResponse	"Malformed id (INVALID_ID)"
// @Router			/queue/{id}/cycle [post]
func (h *Handler) CycleEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Cycle(c.Request.Context(), id); err != nil {
		writeError(c, err, "ENTRY_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Cycled"})
}

// MoveEntry godoc
// @Summary		Move an entry to another cabinet
// @Description	Appends the entry to the back of the target cabinet's queue. A missing entry or target is ignored.
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		int			true	"Entry ID"
// @Param			body	body		MoveRequest	true	"Target cabinet"
// @Success		200		{object}	response.MessageResponse
// @Failure		400		{object}	response.ErrorResponse	"Malformed id (INVALID_ID)"
// @Router			/queue/{id}/move [post]
func (h *Handler) MoveEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.svc.Move(c.Request.Context(), id, req.TargetCabinetID); err != nil {
		writeError(c, err, "ENTRY_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Moved"})
}

// UpdatePlayers godoc
// @Summary		Rename the players of an entry
// @Description	The entry type is unchanged, so the number of names must match it.
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		int						true	"Entry ID"
// @Param			body	body		UpdatePlayersRequest	true	"Player names"
// @Success		200		{object}	models.QueueEntry
// @Failure		404		{object}	response.ErrorResponse	"No such entry (ENTRY_NOT_FOUND)"
// @Failure		422		{object}	response.ErrorResponse	"Wrong player count (VALIDATION_ERROR)"
// @Router			/queue/{id} [patch]
func (h *Handler) UpdatePlayers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdatePlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	entry, err := h.svc.UpdatePlayers(c.Request.Context(), id, req.Players)
	if err != nil {
		writeError(c, err, "ENTRY_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, entry)
}
