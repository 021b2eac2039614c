package department

import (
	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/service/resource"
)

const catalogCacheSeconds = 300

// Handler serves the department catalog: public reads, admin mutations.
type Handler struct {
	*handler.ResourceHandler
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{ResourceHandler: handler.NewResourceHandler(svc)}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	departments := r.Group("/departments")
	{
		departments.GET("", middleware.PublicCache(catalogCacheSeconds), h.List)
		departments.GET("/:id", middleware.PublicCache(catalogCacheSeconds), h.Get)
		departments.POST("", requireAdmin, h.Create)
		departments.PUT("/:id", requireAdmin, h.Update)
		departments.DELETE("/:id", requireAdmin, h.Delete)
	}
}
