package server

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akshaygopinath16/Doddamagge/config"
	"github.com/akshaygopinath16/Doddamagge/internal/handlers"
	"github.com/akshaygopinath16/Doddamagge/internal/helpers"
	"github.com/akshaygopinath16/Doddamagge/internal/mailer"
	"github.com/akshaygopinath16/Doddamagge/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	log := helpers.NewLogger(cfg.Env)
	mail := mailer.New(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender, log)

	r := gin.Default()
	r.Use(cors.Default())

	setupRoutes(r, db, mail)

	log.WithField("port", cfg.Port).Info("server starting")
	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.MailerMiddleware(mail))

	r.Static("/uploads", "./uploads")

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	mobileAuth := api.Group("/mobile-auth")
	{
		mobileAuth.POST("/register", handlers.MobileRegister)
		mobileAuth.POST("/login", handlers.MobileLogin)
		mobileAuth.POST("/send-otp", handlers.SendOTP)
		mobileAuth.POST("/login-otp", handlers.OTPLogin)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.JWTAuthMiddleware(), middleware.AdminRequired())
	{
		dashboard.GET("/stats", handlers.GetStats)
		dashboard.GET("/activity", handlers.GetActivity)
	}

	events := api.Group("/events")
	events.Use(middleware.JWTAuthMiddleware())
	{
		events.GET("", handlers.ListEvents)
		events.POST("", handlers.CreateEvent)

		adminEvents := events.Group("")
		adminEvents.Use(middleware.AdminRequired())
		{
			adminEvents.PUT("/:id", handlers.UpdateEvent)
			adminEvents.PATCH("/:id/status", handlers.UpdateEventStatus)
			adminEvents.DELETE("/:id", handlers.DeleteEvent)
		}
	}

	payments := api.Group("/payments")
	payments.Use(middleware.JWTAuthMiddleware())
	{
		payments.GET("", handlers.ListPayments)
		payments.POST("", handlers.CreatePayment)

		adminPayments := payments.Group("")
		adminPayments.Use(middleware.AdminRequired())
		{
			adminPayments.PUT("/:id", handlers.UpdatePayment)
			adminPayments.PATCH("/:id/status", handlers.UpdatePaymentStatus)
			adminPayments.DELETE("/:id", handlers.DeletePayment)
		}
	}

	users := api.Group("/users")
	users.Use(middleware.JWTAuthMiddleware())
	{
		users.PUT("/profile", handlers.UpdateProfile)

		adminUsers := users.Group("")
		adminUsers.Use(middleware.AdminRequired())
		{
			adminUsers.GET("", handlers.ListUsers)
			adminUsers.PUT("/:id/role", handlers.UpdateUserRole)
			adminUsers.PATCH("/:id/status", handlers.ToggleUserStatus)
		}
	}
}
