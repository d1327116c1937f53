package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
)

type Options struct {
	Desk        *services.FrontDeskService
	Auth        *services.AuthService
	Logger      *zap.Logger
	CORSOrigins []string
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(opts.Logger), cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ac := controllers.NewAuthController(opts.Auth)
	rc := controllers.NewRoomController(opts.Desk)
	rtc := controllers.NewRoomTypeController(opts.Desk)
	sc := controllers.NewStayController(opts.Desk)
	gc := controllers.NewGuestController(opts.Desk)
	repc := controllers.NewReportController(opts.Desk)
	setc := controllers.NewSettingsController(opts.Desk)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		desk := api.Group("", middleware.RequireOperator(opts.Auth))

		rooms := desk.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/occupied", rc.GetOccupiedRooms)
			rooms.POST("/:number/out-of-order", rc.MarkOutOfOrder)
			rooms.POST("/:number/vacant", rc.MarkVacant)
		}
		desk.GET("/room-types", rtc.GetRoomTypes)

		desk.POST("/checkin", sc.CheckIn)
		checkout := desk.Group("/checkout")
		{
			checkout.GET("/:room/preview", sc.PreviewCheckout)
			checkout.POST("", sc.CheckOut)
		}

		guests := desk.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
		}

		desk.GET("/transactions/recent", repc.GetRecentTransactions)
		reports := desk.Group("/reports")
		{
			reports.GET("", repc.GetReport)
			reports.GET("/daily", repc.GetDailyReport)
		}
		desk.GET("/dashboard", repc.GetDashboard)

		settings := desk.Group("/settings")
		{
			settings.GET("/hotel", setc.GetHotelSettings)
			settings.PUT("/hotel", middleware.RequireRole(models.RoleAdmin), setc.UpdateHotelSettings)
		}
	}

	return r
}
