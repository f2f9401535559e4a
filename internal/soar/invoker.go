package soar

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// ActionBackend is the part of the backend API the Invoker needs.
// *Client implements it.
type ActionBackend interface {
	ListInstances(ctx context.Context, integrationName string) ([]Instance, error)
	ExecuteManualAction(ctx context.Context, req ActionRequest) (json.RawMessage, error)
}

var _ ActionBackend = (*Client)(nil)

// Invocation describes one "run action A of integration I" request
type Invocation struct {
	IntegrationName       string
	ActionName            string
	Parameters            map[string]interface{} // display name -> value, defaults already omitted
	CaseID                string
	AlertGroupIdentifiers []string
	TargetEntities        []TargetEntity
	Scope                 string // empty means DefaultScope
}

// Invoker turns an Invocation into at most one instance lookup and one
// action execution. It keeps no state between calls: the instance is
// resolved again on every invocation.
type Invoker struct {
	backend ActionBackend
	scopes  ScopeSet
	logger  *slog.Logger
}

// NewInvoker creates an Invoker validating predefined scopes against scopes
func NewInvoker(backend ActionBackend, scopes ScopeSet, logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{
		backend: backend,
		scopes:  scopes,
		logger:  logger,
	}
}

// Invoke runs the action. On success it returns the backend response
// verbatim; every failure is a *Failure whose Message is caller-facing.
func (inv *Invoker) Invoke(ctx context.Context, in Invocation) (json.RawMessage, error) {
	logger := inv.logger.With("integration", in.IntegrationName, "action", in.ActionName, "case_id", in.CaseID)

	// Explicit entities always win over a predefined scope
	var scope *string
	isPredefined := false
	if len(in.TargetEntities) == 0 {
		name := in.Scope
		if name == "" {
			name = DefaultScope
		}
		if !inv.scopes.Contains(name) {
			logger.Warn("Rejected invalid scope", "scope", name)
			return nil, failf(nil, "Invalid scope '%s'. Allowed values are: %s",
				name, strings.Join(inv.scopes.Sorted(), ", "))
		}
		scope = &name
		isPredefined = true
	}

	instances, err := inv.backend.ListInstances(ctx, in.IntegrationName)
	if err != nil {
		logger.Warn("Integration instance lookup failed", "error", err)
		return nil, failf(err, "Error fetching instance: %v", err)
	}
	if len(instances) == 0 {
		logger.Warn("No configured instance for integration")
		return nil, failf(nil, msgNoActiveInstance)
	}

	// Only the first instance is ever used
	instance := instances[0]
	if instance.Identifier == "" {
		logger.Warn("First integration instance has no identifier")
		return nil, failf(nil, msgMissingIdentifier)
	}

	req, err := BuildActionRequest(in, instance.Identifier, scope, isPredefined)
	if err != nil {
		return nil, failf(err, "Error executing action: %v", err)
	}

	logger.Debug("Executing manual action",
		"instance", instance.Identifier,
		"predefined_scope", isPredefined,
		"targets", len(req.TargetEntities))

	result, err := inv.backend.ExecuteManualAction(ctx, req)
	if err != nil {
		logger.Warn("Manual action execution failed", "error", err)
		return nil, failf(err, "Error executing action: %v", err)
	}

	return result, nil
}

// BuildActionRequest assembles the wire envelope for an invocation against a
// resolved instance
func BuildActionRequest(in Invocation, instanceID string, scope *string, isPredefined bool) (ActionRequest, error) {
	params := in.Parameters
	if params == nil {
		params = map[string]interface{}{}
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		return ActionRequest{}, fmt.Errorf("encode script parameters: %w", err)
	}

	groups := in.AlertGroupIdentifiers
	if groups == nil {
		groups = []string{}
	}
	targets := in.TargetEntities
	if targets == nil {
		targets = []TargetEntity{}
	}

	name := ScriptName(in.IntegrationName, in.ActionName)
	return ActionRequest{
		AlertGroupIdentifiers: groups,
		CaseID:                in.CaseID,
		TargetEntities:        targets,
		Scope:                 scope,
		IsPredefinedScope:     isPredefined,
		ActionProvider:        ActionProviderScripts,
		ActionName:            name,
		Properties: ActionProperties{
			IntegrationInstance:          instanceID,
			ScriptName:                   name,
			ScriptParametersEntityFields: string(encoded),
		},
	}, nil
}
