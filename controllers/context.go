package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/middleware"
)

// operator is the username of the authenticated front-desk user.
func operator(c *gin.Context) string {
	return c.GetString(middleware.OperatorKey)
}
