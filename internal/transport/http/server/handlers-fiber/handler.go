// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/lohiyakeshav/StrangeMetrics/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler implements api.ServerInterface using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	validate *validator.Validate
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log:      log,
		uc:       uc,
		validate: validator.New(),
	}
}
