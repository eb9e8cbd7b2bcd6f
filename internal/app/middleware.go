package app

import (
	httpMW "github.com/andrKonan/ProjectAutomate-server/internal/http/middleware"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, s Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, s.Client),
	}
}
