package http

import (
	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
