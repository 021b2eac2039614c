package patient

import (
	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/service/resource"
)

// Handler serves the patient collection. Every route is admin-only;
// patient records carry medical history and contact details.
type Handler struct {
	*handler.ResourceHandler
}

func NewHandler(svc *resource.Service) *Handler {
	return &Handler{ResourceHandler: handler.NewResourceHandler(svc)}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	patients := r.Group("/patients", requireAdmin)
	{
		patients.GET("", h.List)
		patients.POST("", h.Create)
		patients.GET("/department/:department", h.ListByDepartment)
		patients.GET("/:id", h.Get)
		patients.PUT("/:id", h.Update)
		patients.DELETE("/:id", h.Delete)
	}
}
