package soar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CasePriority is a case priority as the platform encodes it on the wire
type CasePriority int

const (
	PriorityInformative CasePriority = -1
	PriorityLow         CasePriority = 40
	PriorityMedium      CasePriority = 60
	PriorityHigh        CasePriority = 80
	PriorityCritical    CasePriority = 100
)

// priorityTokens maps the tool-facing tokens to wire values
var priorityTokens = map[string]CasePriority{
	"PRIORITY_INFO":     PriorityInformative,
	"PRIORITY_LOW":      PriorityLow,
	"PRIORITY_MEDIUM":   PriorityMedium,
	"PRIORITY_HIGH":     PriorityHigh,
	"PRIORITY_CRITICAL": PriorityCritical,
}

// PriorityTokens returns the accepted priority tokens, lowest priority first
func PriorityTokens() []string {
	return []string{"PRIORITY_INFO", "PRIORITY_LOW", "PRIORITY_MEDIUM", "PRIORITY_HIGH", "PRIORITY_CRITICAL"}
}

// ParseCasePriority accepts a token such as PRIORITY_HIGH (or just HIGH),
// case-insensitively
func ParseCasePriority(token string) (CasePriority, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	if !strings.HasPrefix(normalized, "PRIORITY_") {
		normalized = "PRIORITY_" + normalized
	}
	if normalized == "PRIORITY_INFORMATIVE" {
		normalized = "PRIORITY_INFO"
	}
	p, ok := priorityTokens[normalized]
	if !ok {
		return 0, fmt.Errorf("invalid case priority %q (must be one of %s)", token, strings.Join(PriorityTokens(), ", "))
	}
	return p, nil
}

// ListCasesOptions narrows GET /cases
type ListCasesOptions struct {
	Filter    string
	PageSize  int
	PageToken string
}

// EntitySearch is the body of POST /entities/search
type EntitySearch struct {
	Term         string   `json:"term"`
	Types        []string `json:"type,omitempty"`
	IsSuspicious *bool    `json:"isSuspicious,omitempty"`
	IsInternal   *bool    `json:"isInternalAsset,omitempty"`
	Environments []string `json:"environments,omitempty"`
	PageSize     int      `json:"pageSize,omitempty"`
}

func casePath(caseID string, suffix ...string) string {
	parts := append([]string{"/cases", url.PathEscape(caseID)}, suffix...)
	return strings.Join(parts, "/")
}

// ListCases returns cases visible to the API key
func (c *Client) ListCases(ctx context.Context, opts ListCasesOptions) (json.RawMessage, error) {
	query := url.Values{}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}
	if opts.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.PageToken != "" {
		query.Set("pageToken", opts.PageToken)
	}
	return c.get(ctx, "/cases", query)
}

// GetCase returns case metadata
func (c *Client) GetCase(ctx context.Context, caseID string) (json.RawMessage, error) {
	return c.get(ctx, casePath(caseID), nil)
}

// ListCaseAlerts returns the alerts attached to a case
func (c *Client) ListCaseAlerts(ctx context.Context, caseID string) (json.RawMessage, error) {
	return c.get(ctx, casePath(caseID, "alerts"), nil)
}

// ListCaseComments returns the comment wall of a case
func (c *Client) ListCaseComments(ctx context.Context, caseID string) (json.RawMessage, error) {
	return c.get(ctx, casePath(caseID, "comments"), nil)
}

// PostCaseComment appends a comment to a case
func (c *Client) PostCaseComment(ctx context.Context, caseID, comment string) (json.RawMessage, error) {
	return c.post(ctx, casePath(caseID, "comments"), map[string]string{"comment": comment})
}

// ChangeCasePriority updates the priority of a case
func (c *Client) ChangeCasePriority(ctx context.Context, caseID string, priority CasePriority) (json.RawMessage, error) {
	return c.patch(ctx, casePath(caseID), map[string]CasePriority{"Priority": priority})
}

// ListAlertGroupIdentifiers returns the alert group identifiers of a case
func (c *Client) ListAlertGroupIdentifiers(ctx context.Context, caseID string) (json.RawMessage, error) {
	return c.get(ctx, casePath(caseID, "alert-groups"), nil)
}

// ListAlertEvents returns the security events behind an alert
func (c *Client) ListAlertEvents(ctx context.Context, caseID, alertID string) (json.RawMessage, error) {
	path := "/alerts/" + url.PathEscape(caseID) + "/" + url.PathEscape(alertID) + "/events"
	return c.get(ctx, path, nil)
}

// GetEntitiesByAlertGroups returns the entities involved in the given alert groups of a case
func (c *Client) GetEntitiesByAlertGroups(ctx context.Context, caseID string, alertGroupIdentifiers []string) (json.RawMessage, error) {
	if alertGroupIdentifiers == nil {
		alertGroupIdentifiers = []string{}
	}
	body := map[string]interface{}{
		"caseId":                caseID,
		"alertGroupIdentifiers": alertGroupIdentifiers,
	}
	return c.post(ctx, "/entities/by-alert-groups", body)
}

// GetEntityDetails returns what the platform knows about one entity
func (c *Client) GetEntityDetails(ctx context.Context, identifier, entityType, environment string) (json.RawMessage, error) {
	body := map[string]string{
		"entityIdentifier":  identifier,
		"entityType":        entityType,
		"entityEnvironment": environment,
	}
	return c.post(ctx, "/entities/details", body)
}

// SearchEntities searches the entity explorer
func (c *Client) SearchEntities(ctx context.Context, search EntitySearch) (json.RawMessage, error) {
	return c.post(ctx, "/entities/search", search)
}

// CaseFullDetails is the merged result of GetCaseFullDetails
type CaseFullDetails struct {
	CaseDetails  json.RawMessage `json:"case_details"`
	CaseAlerts   json.RawMessage `json:"case_alerts"`
	CaseComments json.RawMessage `json:"case_comments"`
}

// GetCaseFullDetails fetches case metadata, alerts and comments concurrently.
// The first failure fails the whole call and cancels the outstanding requests.
func (c *Client) GetCaseFullDetails(ctx context.Context, caseID string) (*CaseFullDetails, error) {
	g, gctx := errgroup.WithContext(ctx)
	out := &CaseFullDetails{}

	g.Go(func() error {
		raw, err := c.GetCase(gctx, caseID)
		if err != nil {
			return fmt.Errorf("get case: %w", err)
		}
		out.CaseDetails = raw
		return nil
	})
	g.Go(func() error {
		raw, err := c.ListCaseAlerts(gctx, caseID)
		if err != nil {
			return fmt.Errorf("list case alerts: %w", err)
		}
		out.CaseAlerts = raw
		return nil
	})
	g.Go(func() error {
		raw, err := c.ListCaseComments(gctx, caseID)
		if err != nil {
			return fmt.Errorf("list case comments: %w", err)
		}
		out.CaseComments = raw
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
