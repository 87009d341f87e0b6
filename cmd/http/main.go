package main

import (
	"net/http"
	"os"

	"apollomcp/internal/api"
	"apollomcp/internal/impl/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	mcpServer, err := api.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build MCP server", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/sse", echo.WrapHandler(sseServer.SSEHandler()))
	e.POST("/message", echo.WrapHandler(sseServer.MessageHandler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": api.Version,
		})
	})

	logger.Info("Serving MCP over SSE", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
