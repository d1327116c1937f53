package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomTypeController struct {
	Desk *services.FrontDeskService
}

func NewRoomTypeController(desk *services.FrontDeskService) *RoomTypeController {
	return &RoomTypeController{Desk: desk}
}

func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rc.Desk.RoomTypes(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}
