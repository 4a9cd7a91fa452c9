package router

import (
	"github.com/gin-gonic/gin"

	"zalestorm.app/crm/internal/http/handler"
)

func ContactRouter(rg *gin.RouterGroup, h *handler.ContactHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func CompanyRouter(rg *gin.RouterGroup, h *handler.CompanyHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func DealRouter(rg *gin.RouterGroup, h *handler.DealHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func ActivityRouter(rg *gin.RouterGroup, h *handler.ActivityHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.DELETE("/:id", h.Delete)
}
