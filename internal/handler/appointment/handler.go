package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/medicore/hospital-api/internal/email"
	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/resource"
)

// Handler serves the appointment collection. Booking and receipt lookup
// are public so an unauthenticated visitor can book and later re-fetch
// their confirmation by id; everything else is admin-only.
type Handler struct {
	*handler.ResourceHandler
	mailer email.Service
	log    zerolog.Logger
}

func NewHandler(svc *resource.Service, mailer email.Service, log zerolog.Logger) *Handler {
	return &Handler{
		ResourceHandler: handler.NewResourceHandler(svc),
		mailer:          mailer,
		log:             log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", requireAdmin, h.List)
		appointments.POST("", h.Book)
		appointments.GET("/department/:department", requireAdmin, h.ListByDepartment)
		appointments.GET("/:id", h.Get)
		appointments.PUT("/:id", requireAdmin, h.Update)
		appointments.DELETE("/:id", requireAdmin, h.Delete)
	}
}

// Book creates an appointment from the public booking form. No double-
// booking check: two visitors can take the same doctor, date and time.
func (h *Handler) Book(c *gin.Context) {
	var body model.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		handler.RespondError(c, err)
		return
	}

	if body.StringField("status") == "" {
		body = body.Clone()
		body["status"] = model.AppointmentStatusScheduled
	}

	rec, err := h.Service().Create(c.Request.Context(), body)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	if err := h.mailer.SendBookingConfirmation(c.Request.Context(), rec); err != nil {
		h.log.Warn().Err(err).Str("appointment_id", rec.ID()).Msg("booking confirmation not sent")
	}

	c.JSON(http.StatusCreated, handler.NewMessageResponse(rec, "Appointment booked successfully"))
}
