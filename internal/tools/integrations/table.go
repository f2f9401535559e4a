// Package integrations exposes third-party integration actions as MCP tools.
//
// Integrations are declared as data: an Integration lists its Actions, an
// Action lists its script Params. A single adapter turns every Action into a
// tool schema and a handler that runs the action through the SOAR invoker.
package integrations

// Kind determines how a parameter is read from the tool arguments and
// written into the script parameter bag
type Kind int

const (
	String Kind = iota // free text, sent as a JSON string
	Bool               // sent as a JSON boolean
	Enum               // one of Choices, sent as a JSON string
)

// Param describes one script parameter of an action
type Param struct {
	Name        string // display name the remote script expects, byte for byte
	Arg         string // tool argument name (snake_case)
	Kind        Kind
	Required    bool     // always sent
	Default     string   // value the remote script assumes when the key is absent
	Choices     []string // allowed values for Enum
	Description string
}

// Action is one remote script of an integration
type Action struct {
	Name        string // action name as the platform knows it, e.g. "Enrich Hash"
	Tool        string // tool name override; derived from the integration and action when empty
	Description string
	Params      []Param
}

// Integration is one third-party product reachable through the platform
type Integration struct {
	Name        string // integration name used for instance lookup, e.g. "VirusTotalV3"
	Profile     string // tool profile and tool name prefix, e.g. "virustotal"
	Description string
	Actions     []Action
}

// Catalog is every integration this server exposes, grouped by category
var Catalog = concat(
	sandboxes,
	threatIntel,
	firewalls,
	endpoint,
	cloudSecurity,
	ticketing,
	utilities,
)

func concat(groups ...[]Integration) []Integration {
	var out []Integration
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ping is shared by every integration: it checks connectivity of the
// configured instance and takes no parameters
func ping(product string) Action {
	return Action{
		Name:        "Ping",
		Description: "Test connectivity to " + product + " using the configured integration instance.",
	}
}
