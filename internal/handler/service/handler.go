package service

import (
	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/service/resource"
)

const catalogCacheSeconds = 300

// Handler serves the medical-service catalog: public reads, admin
// mutations.
type Handler struct {
	*handler.ResourceHandler
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{ResourceHandler: handler.NewResourceHandler(svc)}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	services := r.Group("/services")
	{
		services.GET("", middleware.PublicCache(catalogCacheSeconds), h.List)
		services.GET("/:id", middleware.PublicCache(catalogCacheSeconds), h.Get)
		services.POST("", requireAdmin, h.Create)
		services.PUT("/:id", requireAdmin, h.Update)
		services.DELETE("/:id", requireAdmin, h.Delete)
	}
}
