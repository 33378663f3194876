package handler

import (
	"github.com/ddanshin/staffdir/internal/config"
	"github.com/ddanshin/staffdir/internal/handler/http"
	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
