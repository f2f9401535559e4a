package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/secopslabs/soar-mcp-go/internal/gcs"
	"github.com/secopslabs/soar-mcp-go/internal/metrics"
)

// ProfileAll expands to every registered tool
const ProfileAll = "all"

// ToolHandler is the function signature for MCP tool handlers
type ToolHandler func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error)

// ToolRegistration holds a tool's metadata and handler
type ToolRegistration struct {
	Name        string
	Description string
	Handler     ToolHandler
	Schema      mcp.Tool
	Profile     string
}

// Global tool registry, filled from package init() functions
var registry = make(map[string]*ToolRegistration)

// RegisterTool adds a tool to the registry. Registering the same name twice
// is a programming error.
func RegisterTool(reg *ToolRegistration) {
	if _, exists := registry[reg.Name]; exists {
		panic(fmt.Sprintf("tool %q registered twice", reg.Name))
	}
	registry[reg.Name] = reg
}

// GetTool retrieves a tool from the registry
func GetTool(name string) (*ToolRegistration, bool) {
	tool, ok := registry[name]
	return tool, ok
}

// GetAllRegisteredToolNames returns every registered tool name, sorted
func GetAllRegisteredToolNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfileNames returns every profile a caller may select: "all", the
// profiles tools registered themselves under, and the bundles
func ProfileNames() []string {
	seen := map[string]bool{ProfileAll: true}
	for _, reg := range registry {
		seen[reg.Profile] = true
	}
	for name := range ProfileBundles {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetToolsForProfile returns the sorted tool names of a profile, and false
// when the profile is unknown
func GetToolsForProfile(profile string) ([]string, bool) {
	if profile == ProfileAll {
		return GetAllRegisteredToolNames(), true
	}

	if bundle, ok := ProfileBundles[profile]; ok {
		out := append([]string(nil), bundle...)
		sort.Strings(out)
		return out, true
	}

	var names []string
	for name, reg := range registry {
		if reg.Profile == profile {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, false
	}
	sort.Strings(names)
	return names, true
}

// ResolveProfiles merges the tools of several profiles, keeping the first
// occurrence of each name
func ResolveProfiles(profiles []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, profile := range profiles {
		profile = strings.TrimSpace(profile)
		if profile == "" {
			continue
		}
		names, ok := GetToolsForProfile(profile)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q (available: %s)", profile, strings.Join(ProfileNames(), ", "))
		}
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out, nil
}

// AddToolsToServer adds all tools of the given profiles to an MCP server
func AddToolsToServer(s *server.MCPServer, profiles []string) error {
	names, err := ResolveProfiles(profiles)
	if err != nil {
		return err
	}

	for _, name := range names {
		reg, ok := GetTool(name)
		if !ok {
			return fmt.Errorf("profile references unregistered tool %q", name)
		}
		s.AddTool(reg.Schema, wrapHandler(reg))
	}

	return nil
}

// CallTool runs a registered tool the same way the MCP server would. The
// HTTP transport uses it to serve tools/call.
func CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	reg, ok := GetTool(name)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return invoke(ctx, reg, args)
}

// wrapHandler converts our ToolHandler to mcp-go's expected signature
func wrapHandler(reg *ToolRegistration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return invoke(ctx, reg, request.GetArguments())
	}
}

// invoke calls the handler, records the outcome and offloads large results
func invoke(ctx context.Context, reg *ToolRegistration, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := reg.Handler(ctx, args)

	failed := err != nil || result == nil || result.IsError
	if mgr := metrics.GetManager(ctx); mgr != nil {
		mgr.RecordInvocation(reg.Name, failed)
	}

	if failed {
		return result, err
	}

	return gcs.WrapToolResult(ctx, result, reg.Name), nil
}
