package team

import (
	"github.com/ShubhamJagtap-29/gamersden/config"
	mw "github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	membership := NewMembershipService(repo)
	controller := NewTeamController(repo, membership, appConfig)

	// Public team routes
	router.GET("/teams", controller.GetAllTeams)
	router.GET("/teams/:team_id", controller.GetTeamByID)
	router.GET("/teams/:team_id/members", controller.GetTeamMembers)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/teams", controller.CreateTeam)
		authRoutes.POST("/teams/:team_id/leave", controller.LeaveTeam)
		authRoutes.POST("/teams/:team_id/apply", controller.ApplyToTeam)

		// Roster management; captain checks live in the handlers
		authRoutes.POST("/teams/:team_id/members", controller.AddMember)
		authRoutes.DELETE("/teams/:team_id/members/:user_id", controller.RemoveMember)
		authRoutes.PUT("/teams/:team_id/members/:user_id/role", controller.UpdateMemberRole)

		authRoutes.GET("/teams/:team_id/applications", controller.GetTeamApplications)
		authRoutes.PUT("/teams/:team_id/applications/:application_id/:action", controller.RespondToApplication)
	}

	// Admin back-office routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	adminRoutes.Use(mw.RequireRoles(db, roles.Admin))
	{
		adminRoutes.GET("/teams", controller.AdminGetAllTeams)
		adminRoutes.PUT("/teams/:team_id/status", controller.AdminUpdateTeamStatus)
		adminRoutes.PUT("/teams/:team_id/ban", controller.AdminBanTeam)
		adminRoutes.DELETE("/teams/:team_id/members/:user_id", controller.AdminRemoveMember)
	}
}
