package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/resource"
)

// ResourceHandler implements the endpoint pattern shared by every resource
// collection. Bodies are opaque JSON objects; beyond requiring a parseable
// object the server validates nothing, matching the admin console's
// client-side validation split.
type ResourceHandler struct {
	svc *resource.Service
}

func NewResourceHandler(svc *resource.Service) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

func (h *ResourceHandler) Service() *resource.Service { return h.svc }

func (h *ResourceHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewListResponse(records, len(records)))
}

func (h *ResourceHandler) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(rec))
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var body model.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		// A malformed body surfaces as a 500 carrying the parse error.
		RespondError(c, err)
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewMessageResponse(rec,
		fmt.Sprintf("%s created successfully", h.svc.Name())))
}

func (h *ResourceHandler) Update(c *gin.Context) {
	var body model.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, err)
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewMessageResponse(rec,
		fmt.Sprintf("%s updated successfully", h.svc.Name())))
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewMessageResponse(nil,
		fmt.Sprintf("%s deleted successfully", h.svc.Name())))
}

func (h *ResourceHandler) ListByDepartment(c *gin.Context) {
	records, err := h.svc.ListByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewListResponse(records, len(records)))
}
