package router

import (
	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/handler"
	"zalestorm.app/crm/internal/http/middleware"
	"zalestorm.app/crm/internal/service"
	"zalestorm.app/crm/internal/store"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, stores *store.Stores, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(stores.Users()))
	{
		ai := v1.Group("/ai")
		{
			assistantHandler := handler.NewAssistantHandler(services.Assistant())
			ai.POST("/assistant", assistantHandler.Handle)

			predictionHandler := handler.NewPredictionHandler(services.Predictions())
			ai.POST("/predictions", predictionHandler.Handle)
		}

		syncHandler := handler.NewSyncHandler(services.Sync())
		v1.POST("/integrations/company-api", syncHandler.Handle)

		contactHandler := handler.NewContactHandler(services.Contacts())
		ContactRouter(v1.Group("/contacts"), contactHandler)

		companyHandler := handler.NewCompanyHandler(services.Companies())
		CompanyRouter(v1.Group("/companies"), companyHandler)

		dealHandler := handler.NewDealHandler(services.Deals())
		DealRouter(v1.Group("/deals"), dealHandler)

		activityHandler := handler.NewActivityHandler(services.Activities())
		ActivityRouter(v1.Group("/activities"), activityHandler)

		dashboardHandler := handler.NewDashboardHandler(services.Dashboard())
		v1.GET("/dashboard/stats", dashboardHandler.Stats)
	}
}
