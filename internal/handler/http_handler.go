package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/identifier/internal/service"
	"github.com/weiawesome/identifier/pkg/log"
	"github.com/weiawesome/identifier/pkg/response"
)

// Handler handles HTTP requests for the id service.
type Handler struct {
	idService service.IDService
}

// NewHandler creates a new HTTP handler.
func NewHandler(idService service.IDService) *Handler {
	return &Handler{idService: idService}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/kinds", h.ListKinds)

		ids := api.Group("/ids/:kind")
		{
			ids.POST("", h.Generate)
			ids.GET("/:id", h.Parse)
			ids.GET("/:id/validate", h.Validate)
		}
	}
}

type generateResponse struct {
	Kind string   `json:"kind"`
	IDs  []string `json:"ids"`
}

type validateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ListKinds returns the configured identifier kinds.
func (h *Handler) ListKinds(c *gin.Context) {
	response.Success(c, h.idService.Kinds(c.Request.Context()))
}

// Generate creates one identifier, or ?count=N of them.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	kind := c.Param("kind")

	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "count must be an integer")
			return
		}
		count = n
	}

	ids, err := h.idService.GenerateBatch(ctx, kind, count)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, generateResponse{Kind: kind, IDs: ids})
}

// Parse validates an identifier and returns its canonical form.
func (h *Handler) Parse(c *gin.Context) {
	result, err := h.idService.Parse(c.Request.Context(), c.Param("kind"), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, result)
}

// Validate reports whether an identifier is valid without failing the request.
func (h *Handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()
	kind := c.Param("kind")
	valid, reason, err := h.idService.Validate(ctx, kind, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, validateResponse{Valid: valid, Reason: reason})
}

func (h *Handler) fail(c *gin.Context, err error) {
	l := log.Ctx(c.Request.Context())
	switch {
	case errors.Is(err, service.ErrUnknownKind):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCount):
		response.BadRequest(c, err.Error())
	case service.ErrorCode(err) != "":
		response.Unprocessable(c, service.ErrorCode(err), err.Error())
	default:
		l.Error().Err(err).Msg("request failed")
		response.InternalError(c, "internal error")
	}
}
