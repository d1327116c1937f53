package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// StayController handles check-in and check-out at the desk.
type StayController struct {
	Desk *services.FrontDeskService
}

func NewStayController(desk *services.FrontDeskService) *StayController {
	return &StayController{Desk: desk}
}

type checkInPayload struct {
	models.GuestInfo
	Room     string           `json:"room"`
	Nights   int              `json:"nights"`
	Adults   int              `json:"adults"`
	Children int              `json:"children"`
	RoomRate *decimal.Decimal `json:"roomRate"`
}

func (sc *StayController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	guest, err := sc.Desk.CheckIn(c.Request.Context(), services.OpenStayRequest{
		Room:     payload.Room,
		Guest:    payload.GuestInfo,
		Nights:   payload.Nights,
		Adults:   payload.Adults,
		Children: payload.Children,
		RoomRate: payload.RoomRate,
	}, operator(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func parseExtraCharges(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (sc *StayController) PreviewCheckout(c *gin.Context) {
	extras, ok := parseExtraCharges(c.Query("extraCharges"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "extraCharges must be a number")
		return
	}
	preview, err := sc.Desk.PreviewCheckout(c.Request.Context(), c.Param("room"), extras)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, preview)
}

type checkOutPayload struct {
	Room         string           `json:"room"`
	ExtraCharges *decimal.Decimal `json:"extraCharges"`
}

func (sc *StayController) CheckOut(c *gin.Context) {
	var payload checkOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	extras := decimal.Zero
	if payload.ExtraCharges != nil {
		extras = *payload.ExtraCharges
	}
	result, err := sc.Desk.CheckOut(c.Request.Context(), payload.Room, extras, operator(c))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
