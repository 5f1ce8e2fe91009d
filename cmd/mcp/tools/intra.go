package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elC0mpa/intra-logtime/cmd/mcp/response"
	"github.com/elC0mpa/intra-logtime/model"
	"github.com/elC0mpa/intra-logtime/service/daterange"
	"github.com/elC0mpa/intra-logtime/service/intra"
	"github.com/elC0mpa/intra-logtime/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterIntraTools registers the intra user and logtime tools with the MCP server
func RegisterIntraTools(s *server.MCPServer, cfg model.Config) {
	s.AddTool(
		mcp.NewTool("intra_get_user",
			mcp.WithDescription("Get the 42 intra profile of a login: id, display name and current campus location"),
			mcp.WithString("login", mcp.Required(), mcp.Description("Intra login, e.g. jdoe")),
		),
		makeIntraUserHandler(cfg, nil),
	)

	s.AddTool(
		mcp.NewTool("intra_get_logtime",
			mcp.WithDescription("Get the hours a 42 login spent on campus between two dates, per day and in total, compared to the monthly target"),
			mcp.WithString("login", mcp.Required(), mcp.Description("Intra login, e.g. jdoe")),
			mcp.WithString("begin_date", mcp.Description("Start date YYYY-MM-DD. Defaults to the 28th that starts the current period")),
			mcp.WithString("end_date", mcp.Description("End date YYYY-MM-DD, inclusive. Defaults to now")),
		),
		makeIntraLogtimeHandler(cfg, nil),
	)
}

func makeIntraUserHandler(cfg model.Config, httpClient *http.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		login := request.GetString("login", "")

		intraSvc := intra.NewService(cfg, httpClient)
		user, err := intraSvc.GetUser(ctx, login)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get user %s: %v", login, err)), nil
		}

		resp := response.ConvertUser(user)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeIntraLogtimeHandler(cfg model.Config, httpClient *http.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		login := request.GetString("login", "")
		begin := request.GetString("begin_date", "")
		end := request.GetString("end_date", "")

		orchestratorSvc := orchestrator.NewService(
			cfg,
			daterange.NewService(cfg.AnchorDay),
			intra.NewService(cfg, httpClient),
		)

		report, err := orchestratorSvc.BuildReport(ctx, login, begin, end)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get logtime: %v", err)), nil
		}

		resp := response.ConvertReport(report, cfg.Milestones)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
