package webserver

import (
	"fmt"
	"time"

	"github.com/itlabra/xmlcatalog/internal/app"
	"github.com/itlabra/xmlcatalog/internal/restapi"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// WebServer wraps the echo instance serving the catalog API.
type WebServer struct {
	root   *echo.Echo
	appCtx app.AppContext
}

func New(appCtx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JsoniterSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(zapAccessLog())

	restapi.Register(e, appCtx)

	return &WebServer{root: e, appCtx: appCtx}
}

// Root exposes the echo instance (used in tests).
func (s *WebServer) Root() *echo.Echo {
	return s.root
}

// Start begins serving on the configured address and blocks.
func (s *WebServer) Start() error {
	cfg := s.appCtx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("Starting catalog server at http://%s/products", addr)
	return s.root.Start(addr)
}

func zapAccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			zap.L().Info("http request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	}
}
