package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	result, err := ac.Auth.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
