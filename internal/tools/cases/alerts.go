package cases

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

// RegisterListAlertsByCase registers the list_alerts_by_case tool
func RegisterListAlertsByCase() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "list_alerts_by_case",
		Description: "List the alerts of a case",
		Profile:     profile,
		Schema: mcp.NewTool("list_alerts_by_case",
			mcp.WithDescription("List the alerts of a case"),
			mcp.WithString("case_id",
				mcp.Required(),
				mcp.Description("Case ID")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			caseID, err := tools.RequireString(args, "case_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.ListCaseAlerts(ctx, caseID)
			if err != nil {
				return tools.ErrorResultf("failed to list alerts: %v", err), nil
			}
			return tools.RawResult(result), nil
		},
	})
}

// RegisterListAlertGroupIdentifiersByCase registers the list_alert_group_identifiers_by_case tool
func RegisterListAlertGroupIdentifiersByCase() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "list_alert_group_identifiers_by_case",
		Description: "List the alert group identifiers of a case",
		Profile:     profile,
		Schema: mcp.NewTool("list_alert_group_identifiers_by_case",
			mcp.WithDescription("List the alert group identifiers of a case. Integration actions take these as alert_group_identifiers."),
			mcp.WithString("case_id",
				mcp.Required(),
				mcp.Description("Case ID")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			caseID, err := tools.RequireString(args, "case_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.ListAlertGroupIdentifiers(ctx, caseID)
			if err != nil {
				return tools.ErrorResultf("failed to list alert groups: %v", err), nil
			}
			return tools.RawResult(result), nil
		},
	})
}

// RegisterListEventsByAlert registers the list_events_by_alert tool
func RegisterListEventsByAlert() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "list_events_by_alert",
		Description: "List the security events behind an alert",
		Profile:     profile,
		Schema: mcp.NewTool("list_events_by_alert",
			mcp.WithDescription("List the security events behind an alert"),
			mcp.WithString("case_id",
				mcp.Required(),
				mcp.Description("Case ID")),
			mcp.WithString("alert_id",
				mcp.Required(),
				mcp.Description("Alert ID within the case")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			caseID, err := tools.RequireString(args, "case_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			alertID, err := tools.RequireString(args, "alert_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.ListAlertEvents(ctx, caseID, alertID)
			if err != nil {
				return tools.ErrorResultf("failed to list events: %v", err), nil
			}
			return tools.RawResult(result), nil
		},
	})
}
