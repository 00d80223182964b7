package shop

import (
	"github.com/ShubhamJagtap-29/gamersden/config"
	mw "github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShopRoutes sets up all shop-related routes
func ShopRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	controller := NewShopController(repo, appConfig)

	router.GET("/shop/products", controller.GetProducts)

	authRoutes := router.Group("/shop")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/checkout", controller.Checkout)
		authRoutes.GET("/orders", controller.GetMyOrders)
	}

	adminRoutes := router.Group("/admin/shop")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	adminRoutes.Use(mw.RequireRoles(db, roles.Admin))
	{
		adminRoutes.POST("/products", controller.AdminCreateProduct)
		adminRoutes.PUT("/orders/:order_id/paid", controller.AdminMarkOrderPaid)
	}
}
