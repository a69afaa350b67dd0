package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/internal/http/dto"
	"promptrelay.app/relay/internal/service"
)

type GenerateHandler struct {
	generateService service.GenerateService
}

func NewGenerateHandler(generateService service.GenerateService) *GenerateHandler {
	return &GenerateHandler{generateService: generateService}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Unreadable bodies carry no usable question.
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: service.ErrNoInput.Error()})
		return
	}

	result, err := h.generateService.Generate(ctx, service.GenerateInput{
		Question: req.Question,
		Role:     req.RoleName(),
	})
	if err != nil {
		if errors.Is(err, service.ErrNoInput) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{Response: result.Response})
}
