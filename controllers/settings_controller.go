package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type SettingsController struct {
	Desk *services.FrontDeskService
}

func NewSettingsController(desk *services.FrontDeskService) *SettingsController {
	return &SettingsController{Desk: desk}
}

type hotelSettingsPayload struct {
	HotelName    string           `json:"hotelName"`
	HotelAddress string           `json:"hotelAddress"`
	HotelContact string           `json:"hotelContact"`
	VATRate      *decimal.Decimal `json:"vatRate"`
}

func (sc *SettingsController) GetHotelSettings(c *gin.Context) {
	settings, err := sc.Desk.Settings(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}

func (sc *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	settings, err := sc.Desk.UpdateSettings(c.Request.Context(), services.SettingsUpdate{
		HotelName:    payload.HotelName,
		HotelAddress: payload.HotelAddress,
		HotelContact: payload.HotelContact,
		VATRate:      payload.VATRate,
	})
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}
