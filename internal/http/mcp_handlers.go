package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/secopslabs/soar-mcp-go/internal/auth"
	"github.com/secopslabs/soar-mcp-go/internal/resources"
	"github.com/secopslabs/soar-mcp-go/internal/tools"
)

// JSON-RPC 2.0 error codes
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeServerError    = -32000
)

const protocolVersion = "2024-11-05"

type rpcRequest struct {
	JSONRPC string                 `json:"jsonrpc"`
	ID      interface{}            `json:"id"`
	Method  string                 `json:"method"`
	Params  map[string]interface{} `json:"params"`
}

func (s *Server) handleMCPRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	profiles, ok := s.profilesForPath(r.URL.Path)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":    "unknown profile",
			"profiles": tools.ProfileNames(),
		})
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		s.writeJSONRPCError(w, nil, codeParseError, "Parse error", err.Error())
		return
	}

	if req.JSONRPC != "2.0" {
		s.writeJSONRPCError(w, req.ID, codeInvalidRequest, "Invalid Request", "jsonrpc must be '2.0'")
		return
	}

	// Notifications carry no id and expect no response body
	if strings.HasPrefix(req.Method, "notifications/") {
		s.logger.Debug("Notification received", "method", req.Method)
		w.WriteHeader(http.StatusAccepted)
		return
	}

	switch req.Method {
	case "ping":
		s.writeJSONRPCSuccess(w, req.ID, map[string]interface{}{})
	case "initialize":
		s.handleInitialize(w, r, req.ID, req.Params)
	case "tools/list":
		s.handleToolsList(w, r, req.ID, profiles)
	case "tools/call":
		s.handleToolCall(w, r, req.ID, req.Params, profiles)
	case "resources/list":
		s.writeJSONRPCSuccess(w, req.ID, map[string]interface{}{
			"resources": []mcp.Resource{resources.NewContextResource()},
		})
	case "resources/read":
		s.handleResourcesRead(w, r, req.ID, req.Params, profiles)
	default:
		s.writeJSONRPCError(w, req.ID, codeMethodNotFound, "Method not found", fmt.Sprintf("Unknown method: %s", req.Method))
	}
}

func (s *Server) handleInitialize(w http.ResponseWriter, r *http.Request, id interface{}, params map[string]interface{}) {
	if clientInfo, ok := params["clientInfo"].(map[string]interface{}); ok {
		clientName, _ := clientInfo["name"].(string)
		clientVersion, _ := clientInfo["version"].(string)
		s.logger.Info("MCP client initializing", "client", clientName, "version", clientVersion)
	}

	s.writeJSONRPCSuccess(w, id, map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    serverName,
			"version": serverVersion,
		},
	})
}

// parseToolsFromHeader extracts the X-MCP-Tools header; nil means no filter
func parseToolsFromHeader(r *http.Request) []string {
	headerValue := r.Header.Get(HeaderMCPTools)
	if headerValue == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(headerValue, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// toolsForRequest returns the tool names a request may see. The
// X-MCP-Tools header can only narrow the profile, never widen it.
func (s *Server) toolsForRequest(r *http.Request, profiles []string) ([]string, error) {
	names, err := tools.ResolveProfiles(profiles)
	if err != nil {
		return nil, err
	}

	requested := parseToolsFromHeader(r)
	if requested == nil {
		return names, nil
	}

	available := make(map[string]bool, len(names))
	for _, name := range names {
		available[name] = true
	}
	for _, name := range requested {
		if !available[name] {
			return nil, fmt.Errorf("invalid tools in %s header: %q is not available on this endpoint", HeaderMCPTools, name)
		}
	}
	return requested, nil
}

func (s *Server) handleToolsList(w http.ResponseWriter, r *http.Request, id interface{}, profiles []string) {
	toolNames, err := s.toolsForRequest(r, profiles)
	if err != nil {
		s.writeJSONRPCError(w, id, codeInvalidParams, "Invalid params", err.Error())
		return
	}

	toolList := make([]map[string]interface{}, 0, len(toolNames))
	for _, name := range toolNames {
		reg, ok := tools.GetTool(name)
		if !ok {
			continue
		}
		toolList = append(toolList, map[string]interface{}{
			"name":        reg.Name,
			"description": reg.Description,
			"inputSchema": reg.Schema.InputSchema,
		})
	}

	s.writeJSONRPCSuccess(w, id, map[string]interface{}{
		"tools": toolList,
	})
}

func (s *Server) handleToolCall(w http.ResponseWriter, r *http.Request, id interface{}, params map[string]interface{}, profiles []string) {
	ctx := r.Context()
	requestID := auth.GetRequestID(ctx)

	toolName, ok := params["name"].(string)
	if !ok || toolName == "" {
		s.writeJSONRPCError(w, id, codeInvalidParams, "Invalid params", "Missing or invalid 'name' parameter")
		return
	}

	arguments, ok := params["arguments"].(map[string]interface{})
	if !ok {
		arguments = make(map[string]interface{})
	}

	allowed, err := s.toolsForRequest(r, profiles)
	if err != nil {
		s.writeJSONRPCError(w, id, codeInvalidParams, "Invalid params", err.Error())
		return
	}
	if !contains(allowed, toolName) {
		s.writeJSONRPCError(w, id, codeMethodNotFound, "Tool not found", fmt.Sprintf("Unknown tool: %s", toolName))
		return
	}

	s.logger.Info("Tool call started",
		"request_id", requestID,
		"tool", toolName,
		"principal", auth.FromContext(ctx).Key())

	start := time.Now()
	result, err := tools.CallTool(s.requestContext(ctx), toolName, arguments)
	duration := time.Since(start)
	if err == nil && result == nil {
		err = fmt.Errorf("tool %s returned no result", toolName)
	}
	if err != nil {
		s.logger.Info("Tool execution failed",
			"request_id", requestID,
			"tool", toolName,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error())
		s.writeJSONRPCError(w, id, codeServerError, "Tool execution error", err.Error())
		return
	}

	s.logger.Info("Tool call completed",
		"request_id", requestID,
		"tool", toolName,
		"is_error", result.IsError,
		"duration_ms", duration.Milliseconds())

	s.writeJSONRPCSuccess(w, id, result)
}

// handleResourcesRead serves the relationship context of the tools this
// request can see
func (s *Server) handleResourcesRead(w http.ResponseWriter, r *http.Request, id interface{}, params map[string]interface{}, profiles []string) {
	uri, _ := params["uri"].(string)
	if uri != resources.ContextURI {
		s.writeJSONRPCError(w, id, codeInvalidParams, "Invalid params", fmt.Sprintf("Unknown resource: %s", uri))
		return
	}

	names, err := s.toolsForRequest(r, profiles)
	if err != nil {
		s.writeJSONRPCError(w, id, codeInvalidParams, "Invalid params", err.Error())
		return
	}

	contents, err := resources.ReadContext(names)
	if err != nil {
		s.writeJSONRPCError(w, id, codeServerError, "Resource read error", err.Error())
		return
	}

	s.writeJSONRPCSuccess(w, id, map[string]interface{}{
		"contents": contents,
	})
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (s *Server) writeJSONRPCSuccess(w http.ResponseWriter, id interface{}, result interface{}) {
	rw := NewResponseWriter(w, s.logger)
	rw.WriteJSONRPCSuccess(id, result)
}

func (s *Server) writeJSONRPCError(w http.ResponseWriter, id interface{}, code int, message string, data string) {
	rw := NewResponseWriter(w, s.logger)
	rw.WriteJSONRPCError(id, code, message, data)
}
