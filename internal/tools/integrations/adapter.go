package integrations

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/secopslabs/soar-mcp-go/internal/soar"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

const (
	argCaseID         = "case_id"
	argAlertGroups    = "alert_group_identifiers"
	argTargetEntities = "target_entities"
	argScope          = "scope"
)

func init() {
	for _, integ := range Catalog {
		for _, action := range integ.Actions {
			registerAction(integ, action)
		}
	}
}

// ToolName returns the MCP tool name of an action
func ToolName(integ Integration, action Action) string {
	if action.Tool != "" {
		return action.Tool
	}
	return integ.Profile + "_" + snakeCase(action.Name)
}

// snakeCase turns "Get Findings" into "get_findings"
func snakeCase(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func registerAction(integ Integration, action Action) {
	name := ToolName(integ, action)
	description := fmt.Sprintf("%s (%s)", action.Description, integ.Name)

	tools.RegisterTool(&tools.ToolRegistration{
		Name:        name,
		Description: description,
		Profile:     integ.Profile,
		Schema:      buildTool(name, description, action),
		Handler:     buildHandler(integ, action),
	})
}

// buildTool constructs the tool schema: the common invocation arguments
// around the action's own parameters
func buildTool(name, description string, action Action) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString(argCaseID,
			mcp.Required(),
			mcp.Description("ID of the case the action runs in")),
		mcp.WithArray(argAlertGroups,
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.Description("Alert group identifiers the action applies to (may be empty)")),
	}

	for _, p := range action.Params {
		opts = append(opts, paramOption(p))
	}

	opts = append(opts,
		mcp.WithArray(argTargetEntities,
			mcp.Description("Explicit entities to run against. When non-empty, scope is ignored."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"identifier":  map[string]any{"type": "string"},
					"entity_type": map[string]any{"type": "string"},
				},
				"required": []string{"identifier", "entity_type"},
			})),
		mcp.WithString(argScope,
			mcp.DefaultString(soar.DefaultScope),
			mcp.Description("Predefined entity scope used when target_entities is empty")),
	)

	return mcp.NewTool(name, opts...)
}

func paramOption(p Param) mcp.ToolOption {
	desc := p.Description
	if desc == "" {
		desc = p.Name
	}

	props := []mcp.PropertyOption{mcp.Description(desc)}
	if p.Required {
		props = append(props, mcp.Required())
	}

	switch p.Kind {
	case Bool:
		if !p.Required && p.Default != "" {
			props = append(props, mcp.DefaultBool(p.Default == "true"))
		}
		return mcp.WithBoolean(p.Arg, props...)
	case Enum:
		props = append(props, mcp.Enum(p.Choices...))
		fallthrough
	default:
		if !p.Required && p.Default != "" {
			props = append(props, mcp.DefaultString(p.Default))
		}
		return mcp.WithString(p.Arg, props...)
	}
}

// buildHandler adapts tool arguments into an invocation of the action
func buildHandler(integ Integration, action Action) tools.ToolHandler {
	return func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
		caseID, err := tools.RequireString(args, argCaseID)
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}
		groups, err := tools.RequireStringSlice(args, argAlertGroups)
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}
		targets, err := tools.GetTargetEntities(args, argTargetEntities)
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}
		params, err := MapParameters(action, args)
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}

		invoker, err := tools.GetInvoker(ctx)
		if err != nil {
			return tools.ErrorResultf("failed to get backend: %v", err), nil
		}

		result, err := invoker.Invoke(ctx, soar.Invocation{
			IntegrationName:       integ.Name,
			ActionName:            action.Name,
			Parameters:            params,
			CaseID:                caseID,
			AlertGroupIdentifiers: groups,
			TargetEntities:        targets,
			Scope:                 tools.GetString(args, argScope),
		})
		if err != nil {
			return tools.FailedResult(err), nil
		}

		return tools.RawResult(result), nil
	}
}

// MapParameters builds the script parameter bag from tool arguments.
// Required parameters are always present. Optional ones are included only
// when supplied with a value different from their default.
func MapParameters(action Action, args map[string]interface{}) (map[string]interface{}, error) {
	params := make(map[string]interface{})

	for _, p := range action.Params {
		switch p.Kind {
		case Bool:
			v, present, err := tools.GetBool(args, p.Arg)
			if err != nil {
				return nil, err
			}
			if !present {
				if p.Required {
					return nil, fmt.Errorf("%s parameter is required", p.Arg)
				}
				continue
			}
			if !p.Required && p.Default != "" && strconv.FormatBool(v) == p.Default {
				continue
			}
			params[p.Name] = v

		default:
			v, present := stringArg(args, p.Arg)
			if !present || v == "" {
				if p.Required {
					return nil, fmt.Errorf("%s parameter is required", p.Arg)
				}
				continue
			}
			if p.Kind == Enum && !contains(p.Choices, v) {
				return nil, fmt.Errorf("invalid %s %q (must be one of %s)", p.Arg, v, strings.Join(p.Choices, ", "))
			}
			if !p.Required && v == p.Default {
				continue
			}
			params[p.Name] = v
		}
	}

	return params, nil
}

// stringArg reads a string argument, formatting numbers the way a user
// would have typed them
func stringArg(args map[string]interface{}, key string) (string, bool) {
	switch v := args[key].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
