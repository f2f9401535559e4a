// Package tools provides the registry, profiles and shared helpers for MCP
// tool packages.
//
// Tool packages register themselves from init() with RegisterTool. Handlers
// reach the SOAR backend through the CaseClient and ActionInvoker
// interfaces, which are injected into the request context so tests can
// swap them out without a live backend.
package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/secopslabs/soar-mcp-go/internal/soar"
)

// ActionInvoker runs one integration action. *soar.Invoker implements it.
type ActionInvoker interface {
	Invoke(ctx context.Context, in soar.Invocation) (json.RawMessage, error)
}

// CaseClient is the case-management surface of the backend. *soar.Client
// implements it.
type CaseClient interface {
	ListCases(ctx context.Context, opts soar.ListCasesOptions) (json.RawMessage, error)
	GetCaseFullDetails(ctx context.Context, caseID string) (*soar.CaseFullDetails, error)
	ChangeCasePriority(ctx context.Context, caseID string, priority soar.CasePriority) (json.RawMessage, error)
	PostCaseComment(ctx context.Context, caseID, comment string) (json.RawMessage, error)
	ListCaseAlerts(ctx context.Context, caseID string) (json.RawMessage, error)
	ListAlertGroupIdentifiers(ctx context.Context, caseID string) (json.RawMessage, error)
	ListAlertEvents(ctx context.Context, caseID, alertID string) (json.RawMessage, error)
	GetEntitiesByAlertGroups(ctx context.Context, caseID string, alertGroupIdentifiers []string) (json.RawMessage, error)
	GetEntityDetails(ctx context.Context, identifier, entityType, environment string) (json.RawMessage, error)
	SearchEntities(ctx context.Context, search soar.EntitySearch) (json.RawMessage, error)
}

var (
	_ ActionInvoker = (*soar.Invoker)(nil)
	_ CaseClient    = (*soar.Client)(nil)
)

// ErrNoBackend is returned when a handler runs without a backend in its context
var ErrNoBackend = errors.New("SOAR backend not configured for this request")

type contextKey string

const (
	caseClientKey contextKey = "case-client"
	invokerKey    contextKey = "action-invoker"
)

// WithCaseClient adds a CaseClient to the context
func WithCaseClient(ctx context.Context, client CaseClient) context.Context {
	return context.WithValue(ctx, caseClientKey, client)
}

// GetCaseClient retrieves the CaseClient from the context
func GetCaseClient(ctx context.Context) (CaseClient, error) {
	if client, ok := ctx.Value(caseClientKey).(CaseClient); ok && client != nil {
		return client, nil
	}
	return nil, ErrNoBackend
}

// WithInvoker adds an ActionInvoker to the context
func WithInvoker(ctx context.Context, inv ActionInvoker) context.Context {
	return context.WithValue(ctx, invokerKey, inv)
}

// GetInvoker retrieves the ActionInvoker from the context
func GetInvoker(ctx context.Context) (ActionInvoker, error) {
	if inv, ok := ctx.Value(invokerKey).(ActionInvoker); ok && inv != nil {
		return inv, nil
	}
	return nil, ErrNoBackend
}

// WithBackend injects both halves of the backend at once
func WithBackend(ctx context.Context, client CaseClient, inv ActionInvoker) context.Context {
	return WithInvoker(WithCaseClient(ctx, client), inv)
}
