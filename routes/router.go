package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ShubhamJagtap-29/gamersden/config"
	"github.com/ShubhamJagtap-29/gamersden/internal/auth"
	"github.com/ShubhamJagtap-29/gamersden/internal/shop"
	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/ShubhamJagtap-29/gamersden/internal/tournament"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "GamersDen API",
			"status": "ok",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	tournament.TournamentRoutes(api, db, appConfig)
	shop.ShopRoutes(api, db, appConfig)

	return r
}
