package doctor

import (
	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/service/resource"
)

const catalogCacheSeconds = 300

// Handler serves the doctor catalog: public reads for the marketing site,
// admin-only mutations.
type Handler struct {
	*handler.ResourceHandler
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{ResourceHandler: handler.NewResourceHandler(svc)}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", middleware.PublicCache(catalogCacheSeconds), h.List)
		doctors.GET("/:id", middleware.PublicCache(catalogCacheSeconds), h.Get)
		doctors.POST("", requireAdmin, h.Create)
		doctors.PUT("/:id", requireAdmin, h.Update)
		doctors.DELETE("/:id", requireAdmin, h.Delete)
	}
}
