package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomController struct {
	Desk *services.FrontDeskService
}

func NewRoomController(desk *services.FrontDeskService) *RoomController {
	return &RoomController{Desk: desk}
}

// GetRooms returns every room grouped by floor.
func (rc *RoomController) GetRooms(c *gin.Context) {
	floors, err := rc.Desk.Rooms(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, floors)
}

func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Desk.AvailableRooms(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetOccupiedRooms(c *gin.Context) {
	rooms, err := rc.Desk.OccupiedRooms(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

type outOfOrderPayload struct {
	Reason        string `json:"reason"`
	Details       string `json:"details"`
	EstimatedDate string `json:"estimatedDate"` // YYYY-MM-DD, optional
}

func (rc *RoomController) MarkOutOfOrder(c *gin.Context) {
	var payload outOfOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	req := services.OutOfOrderRequest{Reason: payload.Reason, Details: payload.Details}
	if payload.EstimatedDate != "" {
		d, err := time.ParseInLocation(time.DateOnly, payload.EstimatedDate, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "estimatedDate must be YYYY-MM-DD")
			return
		}
		req.EstimatedDate = &d
	}

	room, err := rc.Desk.MarkOutOfOrder(c.Request.Context(), c.Param("number"), req, operator(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) MarkVacant(c *gin.Context) {
	room, err := rc.Desk.MarkVacant(c.Request.Context(), c.Param("number"), operator(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
