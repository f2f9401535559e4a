// Package cases provides the case-management tools: reading cases, their
// alerts, events and entities, and the few mutations analysts perform.
package cases

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/secopslabs/soar-mcp-go/internal/soar"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

const profile = "case_management"

func init() {
	RegisterListCases()
	RegisterGetCaseFullDetails()
	RegisterChangeCasePriority()
	RegisterPostCaseComment()
	RegisterListAlertsByCase()
	RegisterListAlertGroupIdentifiersByCase()
	RegisterListEventsByAlert()
	RegisterGetEntitiesByAlertGroupIdentifiers()
	RegisterGetEntityDetails()
	RegisterSearchEntity()
}

// RegisterListCases registers the list_cases tool
func RegisterListCases() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "list_cases",
		Description: "List cases, optionally filtered",
		Profile:     profile,
		Schema: mcp.NewTool("list_cases",
			mcp.WithDescription("List cases, optionally filtered"),
			mcp.WithString("filter",
				mcp.Description("Backend filter expression, e.g. status=\"OPENED\"")),
			mcp.WithNumber("page_size",
				mcp.Description("Maximum cases per page")),
			mcp.WithString("page_token",
				mcp.Description("Token of the page to fetch, from a previous response")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			pageSize, err := tools.GetInt(args, "page_size", 0)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.ListCases(ctx, soar.ListCasesOptions{
				Filter:    tools.GetString(args, "filter"),
				PageSize:  pageSize,
				PageToken: tools.GetString(args, "page_token"),
			})
			if err != nil {
				return tools.ErrorResultf("failed to list cases: %v", err), nil
			}

			return tools.RawResult(result), nil
		},
	})
}

// RegisterGetCaseFullDetails registers the get_case_full_details tool
func RegisterGetCaseFullDetails() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "get_case_full_details",
		Description: "Get a case together with its alerts and comments",
		Profile:     profile,
		Schema: mcp.NewTool("get_case_full_details",
			mcp.WithDescription("Get a case together with its alerts and comments. Fails if any of the three lookups fails."),
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

			details, err := client.GetCaseFullDetails(ctx, caseID)
			if err != nil {
				return tools.ErrorResultf("failed to get case details: %v", err), nil
			}

			return tools.SuccessResult(details), nil
		},
	})
}

// RegisterChangeCasePriority registers the change_case_priority tool
func RegisterChangeCasePriority() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "change_case_priority",
		Description: "Change the priority of a case",
		Profile:     profile,
		Schema: mcp.NewTool("change_case_priority",
			mcp.WithDescription("Change the priority of a case"),
			mcp.WithString("case_id",
				mcp.Required(),
				mcp.Description("Case ID")),
			mcp.WithString("case_priority",
				mcp.Required(),
				mcp.Enum(soar.PriorityTokens()...),
				mcp.Description("New priority: "+strings.Join(soar.PriorityTokens(), ", "))),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			caseID, err := tools.RequireString(args, "case_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			token, err := tools.RequireString(args, "case_priority")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			priority, err := soar.ParseCasePriority(token)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.ChangeCasePriority(ctx, caseID, priority)
			if err != nil {
				return tools.ErrorResultf("failed to change case priority: %v", err), nil
			}

			return tools.RawResult(result), nil
		},
	})
}

// RegisterPostCaseComment registers the post_case_comment tool
func RegisterPostCaseComment() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "post_case_comment",
		Description: "Add a comment to a case",
		Profile:     profile,
		Schema: mcp.NewTool("post_case_comment",
			mcp.WithDescription("Add a comment to a case wall"),
			mcp.WithString("case_id",
				mcp.Required(),
				mcp.Description("Case ID")),
			mcp.WithString("comment",
				mcp.Required(),
				mcp.Description("Comment text")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			caseID, err := tools.RequireString(args, "case_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			comment, err := tools.RequireString(args, "comment")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.PostCaseComment(ctx, caseID, comment)
			if err != nil {
				return tools.ErrorResultf("failed to post comment: %v", err), nil
			}

			return tools.RawResult(result), nil
		},
	})
}
