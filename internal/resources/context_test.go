package resources

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Import tools to register them
	_ "github.com/secopslabs/soar-mcp-go/internal/tools/cases"
	_ "github.com/secopslabs/soar-mcp-go/internal/tools/integrations"
)

func hasRelationship(rels []ToolRelationship, want ToolRelationship) bool {
	for _, rel := range rels {
		if rel == want {
			return true
		}
	}
	return false
}

func TestBuildContext(t *testing.T) {
	t.Run("case tools feed integration actions", func(t *testing.T) {
		ctx := BuildContext([]string{
			"list_cases",
			"list_alert_group_identifiers_by_case",
			"get_entities_by_alert_group_identifiers",
			"wiz_ping",
		})

		assert.Equal(t, "1.0", ctx.Version)
		assert.Equal(t, []string{"list_cases"}, ctx.EntryPoints)

		expected := []ToolRelationship{
			{From: "list_cases", To: "wiz_ping", Type: "provides", Field: "case_id"},
			{From: "list_alert_group_identifiers_by_case", To: "wiz_ping", Type: "provides", Field: "alert_group_identifiers"},
			{From: "get_entities_by_alert_group_identifiers", To: "wiz_ping", Type: "provides", Field: "target_entities"},
			{From: "list_cases", To: "get_entities_by_alert_group_identifiers", Type: "provides", Field: "case_id"},
		}
		for _, rel := range expected {
			assert.True(t, hasRelationship(ctx.Relationships, rel), "missing %+v", rel)
		}
	})

	t.Run("relationships stay inside the tool set", func(t *testing.T) {
		ctx := BuildContext([]string{"wiz_ping", "post_case_comment"})
		assert.Empty(t, ctx.Relationships)
		assert.Empty(t, ctx.EntryPoints)
	})

	t.Run("chains need both ends", func(t *testing.T) {
		ctx := BuildContext([]string{"post_case_comment", "get_case_full_details"})
		assert.True(t, hasRelationship(ctx.Relationships,
			ToolRelationship{From: "post_case_comment", To: "get_case_full_details", Type: "chains"}))
	})

	t.Run("unknown tools are ignored", func(t *testing.T) {
		ctx := BuildContext([]string{"does_not_exist", "list_cases"})
		assert.Empty(t, ctx.Relationships)
		assert.Equal(t, []string{"list_cases"}, ctx.EntryPoints)
	})
}

func TestReadContext(t *testing.T) {
	contents, err := ReadContext([]string{"list_cases", "wiz_ping"})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, ContextURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)

	var decoded ToolContext
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	assert.Equal(t, []ToolRelationship{
		{From: "list_cases", To: "wiz_ping", Type: "provides", Field: "case_id"},
	}, decoded.Relationships)
}

func TestNewContextResource(t *testing.T) {
	res := NewContextResource()
	assert.Equal(t, ContextURI, res.URI)
	assert.Equal(t, "application/json", res.MIMEType)
	assert.NotEmpty(t, res.Description)
}
