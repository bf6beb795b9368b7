package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salas-backend/controllers"
	"salas-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the route table.
func SetupRouter(
	rc *controllers.RoomController,
	rnc *controllers.RoomNameController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rooms := r.Group("/rooms")
	{
		// Static route must be registered alongside /:id; gin gives it
		// priority so "room-names" never reaches the id handlers.
		rooms.GET("/room-names", rnc.GetRoomNames)
		rooms.POST("/room-names", rnc.CreateRoomName)

		rooms.GET("", rc.GetRooms)
		rooms.POST("", rc.CreateRoom)
		rooms.GET("/:id", rc.GetRoom)
		rooms.PUT("/:id", rc.UpdateRoom)
		rooms.DELETE("/:id", rc.DeleteRoom)
		rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
	}

	return r
}
