// Package api wires the Apollo client, services, and tools into an MCP
// server. This is the composition root: concrete implementations are
// created here and injected into the tools, no business logic lives in
// this package.
package api

import (
	"fmt"

	"apollomcp/internal/domain/interfaces"
	"apollomcp/internal/domain/services"
	"apollomcp/internal/impl/apollo"
	"apollomcp/internal/impl/config"
	"apollomcp/internal/impl/tools"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New builds the MCP server with every tool registered. The Apollo
// client is constructed from cfg; fails when no API key is configured.
func New(cfg *config.Config, logger *zap.Logger) (*server.MCPServer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no Apollo API key configured: set APOLLO_API_KEY or APOLLO_IO_API_KEY")
	}

	opts := []apollo.Option{
		apollo.WithTimeout(cfg.HTTPTimeout),
		apollo.WithRateLimits(cfg.StandardRequestsPerMinute, cfg.BulkRequestsPerMinute),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, apollo.WithBaseURL(cfg.BaseURL))
	}
	if !cfg.RateLimitingEnabled {
		opts = append(opts, apollo.WithoutRateLimiting())
	}

	client, err := apollo.NewClient(cfg.APIKey, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create apollo client: %w", err)
	}

	accountLists := services.NewListService(client.AccountRecords(), logger)
	contactLists := services.NewListService(client.ContactRecords(), logger)

	s := server.NewMCPServer(
		"apollo-io",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	register(s,
		tools.NewPeopleEnrichmentTool(client),
		tools.NewPeopleBulkEnrichmentTool(client),
		tools.NewPeopleSearchTool(client),

		tools.NewOrganizationEnrichmentTool(client),
		tools.NewOrganizationSearchTool(client),
		tools.NewOrganizationJobPostingsTool(client),

		tools.NewContactSearchTool(client),
		tools.NewContactCreateTool(client),
		tools.NewContactUpdateTool(client),
		tools.NewContactBulkCreateTool(client),
		tools.NewContactBulkUpdateTool(client),
		tools.NewContactAddToListTool(contactLists),
		tools.NewContactRemoveFromListTool(contactLists),

		tools.NewAccountSearchTool(client),
		tools.NewAccountCreateTool(client),
		tools.NewAccountUpdateTool(client),
		tools.NewAccountBulkCreateTool(client),
		tools.NewAccountBulkUpdateTool(client),
		tools.NewAccountAddToListTool(accountLists),
		tools.NewAccountRemoveFromListTool(accountLists),

		tools.NewUsageStatsTool(client),
		tools.NewLabelsListTool(client),
		tools.NewCustomFieldsListTool(client),
		tools.NewCustomFieldCreateTool(client),
	)

	logger.Info("MCP server initialized", zap.String("version", Version))
	return s, nil
}

func register(s *server.MCPServer, mcpTools ...interfaces.MCPTool) {
	for _, tool := range mcpTools {
		s.AddTool(tool.Definition(), tool.Handle)
	}
}
