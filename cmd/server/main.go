package main

import (
	"flag"
	"fmt"
	"os"

	"apollomcp/internal/api"
	"apollomcp/internal/impl/config"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(api.Version)
		return
	}

	// Stdout carries the MCP protocol, so logs must go to stderr.
	logConfig := zap.NewDevelopmentConfig()
	logConfig.OutputPaths = []string{"stderr"}
	logConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	mcpServer, err := api.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to build MCP server", zap.Error(err))
	}

	logger.Info("Serving MCP over stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
