package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const RequestIDHeader = "X-Request-ID"

// NewRouter wires every route. liveQueue serves GET /queue/ws and may be nil.
func NewRouter(h *Handler, liveQueue gin.HandlerFunc, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", h.Health)

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", h.ListRestaurants)
		restaurants.POST("/signup", h.Signup)
		restaurants.POST("/login", h.Login)
		restaurants.GET("/:id", h.GetRestaurant)
		restaurants.PUT("/:id", h.UpdateRestaurant)
		restaurants.GET("/:id/opening-hours", h.GetOpeningHours)
		restaurants.PUT("/:id/opening-hours", h.SetOpeningHours)
	}

	reservations := r.Group("/reservations")
	{
		reservations.POST("", h.BookReservation)
		reservations.GET("", h.ListReservations)
		reservations.PUT("/:id", h.RescheduleReservation)
		reservations.DELETE("/:id", h.CancelReservation)
	}

	queue := r.Group("/queue")
	{
		queue.POST("", h.JoinQueue)
		queue.GET("", h.ListQueue)
		queue.GET("/status", h.QueueStatus)
		queue.DELETE("/:id", h.LeaveQueue)
		if liveQueue != nil {
			queue.GET("/ws", liveQueue)
		}
	}

	return r
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		log.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("request_id", id),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)))
	}
}
