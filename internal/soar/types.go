package soar

const (
	// ActionProviderScripts is the only provider manual actions are executed through
	ActionProviderScripts = "Scripts"

	// DefaultScope is the scope used when a caller supplies neither entities nor a scope
	DefaultScope = "All entities"
)

// DefaultScopes are the predefined scopes accepted when none are configured
var DefaultScopes = []string{DefaultScope, "Only Suspicious"}

// Instance is one configured deployment of a third-party integration.
// Instances are created and removed by the platform; this server only reads them.
type Instance struct {
	Identifier            string `json:"identifier"`
	IntegrationIdentifier string `json:"integrationIdentifier,omitempty"`
	DisplayName           string `json:"displayName,omitempty"`
	Environment           string `json:"environment,omitempty"`
}

type instanceListResponse struct {
	Instances []Instance `json:"integration_instances"`
}

// TargetEntity references a security object an action should run against
type TargetEntity struct {
	Identifier string `json:"identifier"`
	EntityType string `json:"entity_type"`
}

// ActionRequest is the wire envelope for POST /execute-manual-action
type ActionRequest struct {
	AlertGroupIdentifiers []string         `json:"alertGroupIdentifiers"`
	CaseID                string           `json:"caseId"`
	TargetEntities        []TargetEntity   `json:"targetEntities"`
	Scope                 *string          `json:"scope"`
	IsPredefinedScope     bool             `json:"isPredefinedScope"`
	ActionProvider        string           `json:"actionProvider"`
	ActionName            string           `json:"actionName"`
	Properties            ActionProperties `json:"properties"`
}

// ActionProperties selects the instance and script, and carries the script
// parameters as a JSON-encoded string
type ActionProperties struct {
	IntegrationInstance          string `json:"IntegrationInstance"`
	ScriptName                   string `json:"ScriptName"`
	ScriptParametersEntityFields string `json:"ScriptParametersEntityFields"`
}

// ScriptName returns the composite "<Integration>_<Action>" name the platform
// uses both as the action label and the script identifier
func ScriptName(integrationName, actionName string) string {
	return integrationName + "_" + actionName
}
