package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/layouts
func (a *API) GetFloorLayouts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.layouts(c).Layouts()})
}

// GET /api/layouts/:floor
func (a *API) GetFloorView(c *gin.Context) {
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "lantai tidak valid", err)
		return
	}
	view, viewErr := a.layouts(c).FloorViewFor(floor)
	if viewErr != nil {
		RespondDomainError(c, viewErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}

type gridRequest struct {
	GridCols int `json:"grid_cols"`
	GridRows int `json:"grid_rows"`
}

// PUT /api/layouts/:floor
func (a *API) UpdateFloorLayout(c *gin.Context) {
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "lantai tidak valid", err)
		return
	}
	var req gridRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	layout, layoutErr := a.layouts(c).UpdateFloorLayout(floor, req.GridCols, req.GridRows)
	if layoutErr != nil {
		RespondDomainError(c, layoutErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": layout})
}

type positionRequest struct {
	Floor    int  `json:"floor"`
	Position *int `json:"position"` // null berarti lepas dari denah
}

// PUT /api/layouts/rooms/:id/position
func (a *API) UpdateRoomPosition(c *gin.Context) {
	var req positionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	room, err := a.layouts(c).UpdateRoomPosition(c.Param("id"), req.Floor, req.Position)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}
