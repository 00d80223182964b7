package auth

import (
	"github.com/ShubhamJagtap-29/gamersden/config"
	mw "github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes sets up registration, login and profile routes
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	users := user.NewUserRepository(db)
	controller := NewAuthController(users, appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.Refresh)
	}

	me := router.Group("/users")
	me.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		me.GET("/me", controller.Me)
	}
}
