package cases

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/secopslabs/soar-mcp-go/internal/soar"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

// RegisterGetEntitiesByAlertGroupIdentifiers registers the get_entities_by_alert_group_identifiers tool
func RegisterGetEntitiesByAlertGroupIdentifiers() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "get_entities_by_alert_group_identifiers",
		Description: "Get the entities involved in alert groups of a case",
		Profile:     profile,
		Schema: mcp.NewTool("get_entities_by_alert_group_identifiers",
			mcp.WithDescription("Get the entities involved in alert groups of a case"),
			mcp.WithString("case_id",
				mcp.Required(),
				mcp.Description("Case ID")),
			mcp.WithArray("alert_group_identifiers",
				mcp.Required(),
				mcp.WithStringItems(),
				mcp.Description("Alert group identifiers")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			caseID, err := tools.RequireString(args, "case_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			groups, err := tools.GetStringSlice(args, "alert_group_identifiers")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			if len(groups) == 0 {
				return tools.ErrorResult("alert_group_identifiers parameter is required"), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.GetEntitiesByAlertGroups(ctx, caseID, groups)
			if err != nil {
				return tools.ErrorResultf("failed to get entities: %v", err), nil
			}
			return tools.RawResult(result), nil
		},
	})
}

// RegisterGetEntityDetails registers the get_entity_details tool
func RegisterGetEntityDetails() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "get_entity_details",
		Description: "Get what the platform knows about an entity",
		Profile:     profile,
		Schema: mcp.NewTool("get_entity_details",
			mcp.WithDescription("Get what the platform knows about an entity"),
			mcp.WithString("entity_identifier",
				mcp.Required(),
				mcp.Description("Entity identifier, e.g. an IP address or hash")),
			mcp.WithString("entity_type",
				mcp.Required(),
				mcp.Description("Entity type, e.g. ADDRESS, FILEHASH, HOSTNAME")),
			mcp.WithString("entity_environment",
				mcp.DefaultString("Default Environment"),
				mcp.Description("Environment the entity belongs to")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			identifier, err := tools.RequireString(args, "entity_identifier")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			entityType, err := tools.RequireString(args, "entity_type")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			environment := tools.GetString(args, "entity_environment")
			if environment == "" {
				environment = "Default Environment"
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.GetEntityDetails(ctx, identifier, entityType, environment)
			if err != nil {
				return tools.ErrorResultf("failed to get entity details: %v", err), nil
			}
			return tools.RawResult(result), nil
		},
	})
}

// RegisterSearchEntity registers the search_entity tool
func RegisterSearchEntity() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "search_entity",
		Description: "Search the entity explorer",
		Profile:     profile,
		Schema: mcp.NewTool("search_entity",
			mcp.WithDescription("Search the entity explorer"),
			mcp.WithString("term",
				mcp.Description("Free-text term matched against entity identifiers")),
			mcp.WithArray("entity_types",
				mcp.WithStringItems(),
				mcp.Description("Restrict to these entity types")),
			mcp.WithBoolean("is_suspicious",
				mcp.Description("Only suspicious (true) or non-suspicious (false) entities")),
			mcp.WithBoolean("is_internal_asset",
				mcp.Description("Only internal (true) or external (false) assets")),
			mcp.WithArray("environments",
				mcp.WithStringItems(),
				mcp.Description("Restrict to these environments")),
			mcp.WithNumber("page_size",
				mcp.Description("Maximum entities to return")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			search := soar.EntitySearch{Term: tools.GetString(args, "term")}

			var err error
			if search.Types, err = tools.GetStringSlice(args, "entity_types"); err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			if search.Environments, err = tools.GetStringSlice(args, "environments"); err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			if search.PageSize, err = tools.GetInt(args, "page_size", 0); err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			if v, ok, err := tools.GetBool(args, "is_suspicious"); err != nil {
				return tools.ErrorResult(err.Error()), nil
			} else if ok {
				search.IsSuspicious = &v
			}
			if v, ok, err := tools.GetBool(args, "is_internal_asset"); err != nil {
				return tools.ErrorResult(err.Error()), nil
			} else if ok {
				search.IsInternal = &v
			}

			if search.Term == "" && len(search.Types) == 0 && search.IsSuspicious == nil && search.IsInternal == nil && len(search.Environments) == 0 {
				return tools.ErrorResult("at least one search criterion is required"), nil
			}

			client, err := tools.GetCaseClient(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get backend: %v", err), nil
			}

			result, err := client.SearchEntities(ctx, search)
			if err != nil {
				return tools.ErrorResultf("failed to search entities: %v", err), nil
			}
			return tools.RawResult(result), nil
		},
	})
}
