package http

import (
	"orders/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the echo instance serving s: trailing slashes are stripped before
// routing, every request gets an id, a log line and OpenAPI validation, and errors
// are rendered by ErrorHandler.
func NewRouter(s servers.ServerInterface, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	if err := registerSwagger(doc); err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLogger(logger))
	e.Use(validator)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, s)

	return e, nil
}
