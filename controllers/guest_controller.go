package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type GuestController struct {
	Desk *services.FrontDeskService
}

func NewGuestController(desk *services.FrontDeskService) *GuestController {
	return &GuestController{Desk: desk}
}

// GetGuests lists the guests currently checked in, optionally filtered by
// ?q= on name, phone, email or room.
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.Desk.SearchGuests(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (gc *GuestController) GetGuestByID(c *gin.Context) {
	guest, err := gc.Desk.Guest(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}
