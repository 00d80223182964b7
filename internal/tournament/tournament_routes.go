package tournament

import (
	"github.com/ShubhamJagtap-29/gamersden/config"
	mw "github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TournamentRoutes sets up all tournament-related routes
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	service := NewService(repo, team.NewRepository(db))
	controller := NewTournamentController(repo, service)

	router.GET("/tournaments", controller.GetAllTournaments)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/tournaments/:tournament_id/register", controller.RegisterTeam)
	}

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	adminRoutes.Use(mw.RequireRoles(db, roles.Admin))
	{
		adminRoutes.POST("/tournaments", controller.AdminCreateTournament)
		adminRoutes.PUT("/tournaments/:tournament_id/close", controller.AdminCloseTournament)
	}
}
