// Package resources provides MCP resources for the SOAR MCP server.
package resources

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

// ContextURI is the URI of the tool relationship resource.
const ContextURI = "soar://context"

const contextMIMEType = "application/json"

// ToolRelationship describes how the output of one tool feeds another.
type ToolRelationship struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
}

// ToolContext is the document served at ContextURI.
type ToolContext struct {
	Version       string             `json:"version"`
	Relationships []ToolRelationship `json:"relationships"`
	EntryPoints   []string           `json:"entryPoints"`
}

// providers lists, per argument name, the tools whose results supply it.
// Integration tools take case_id, alert_group_identifiers and
// target_entities, so every action hangs off the case tools.
var providers = map[string][]string{
	"case_id":                 {"list_cases"},
	"alert_id":                {"list_alerts_by_case"},
	"alert_group_identifiers": {"list_alert_group_identifiers_by_case"},
	"target_entities":         {"get_entities_by_alert_group_identifiers", "search_entity"},
	"entity_identifier":       {"get_entities_by_alert_group_identifiers", "search_entity"},
}

// chains are follow-ups worth running after a write.
var chains = []ToolRelationship{
	{From: "post_case_comment", To: "get_case_full_details", Type: "chains"},
	{From: "change_case_priority", To: "get_case_full_details", Type: "chains"},
}

var entryPoints = []string{"list_cases", "search_entity"}

// BuildContext derives the relationships between the given tools from their
// input schemas. Tools that are not registered are ignored.
func BuildContext(toolNames []string) ToolContext {
	enabled := make(map[string]bool, len(toolNames))
	for _, name := range toolNames {
		if _, ok := tools.GetTool(name); ok {
			enabled[name] = true
		}
	}

	names := make([]string, 0, len(enabled))
	for name := range enabled {
		names = append(names, name)
	}
	sort.Strings(names)

	rels := []ToolRelationship{}
	for _, name := range names {
		reg, _ := tools.GetTool(name)

		args := make([]string, 0, len(reg.Schema.InputSchema.Properties))
		for arg := range reg.Schema.InputSchema.Properties {
			args = append(args, arg)
		}
		sort.Strings(args)

		for _, arg := range args {
			for _, from := range providers[arg] {
				if from == name || !enabled[from] {
					continue
				}
				rels = append(rels, ToolRelationship{From: from, To: name, Type: "provides", Field: arg})
			}
		}
	}

	for _, rel := range chains {
		if enabled[rel.From] && enabled[rel.To] {
			rels = append(rels, rel)
		}
	}

	entries := []string{}
	for _, name := range entryPoints {
		if enabled[name] {
			entries = append(entries, name)
		}
	}

	return ToolContext{
		Version:       "1.0",
		Relationships: rels,
		EntryPoints:   entries,
	}
}

// NewContextResource creates the tool relationship resource definition.
func NewContextResource() mcp.Resource {
	return mcp.NewResource(
		ContextURI,
		"Tool Relationships Context",
		mcp.WithResourceDescription("Describes how case tools feed integration actions so that tool calls can be chained."),
		mcp.WithMIMEType(contextMIMEType),
	)
}

// ReadContext renders the relationship document for a tool set.
func ReadContext(toolNames []string) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(BuildContext(toolNames))
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ContextURI,
			MIMEType: contextMIMEType,
			Text:     string(data),
		},
	}, nil
}

// AddResourcesToServer adds the resources describing toolNames to s.
func AddResourcesToServer(s *server.MCPServer, toolNames []string) {
	s.AddResource(NewContextResource(), func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return ReadContext(toolNames)
	})
}
