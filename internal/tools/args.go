package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/secopslabs/soar-mcp-go/internal/soar"
)

// GetString returns a string argument, or "" when absent or not a string
func GetString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// RequireString returns a non-empty string argument. Numbers are accepted
// and formatted, since clients often send case IDs unquoted.
func RequireString(args map[string]interface{}, key string) (string, error) {
	switch v := args[key].(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("%s parameter is required", key)
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case nil:
		return "", fmt.Errorf("%s parameter is required", key)
	default:
		return "", fmt.Errorf("%s must be a string", key)
	}
}

// GetBool returns a bool argument and whether it was supplied. The strings
// "true" and "false" are accepted as well.
func GetBool(args map[string]interface{}, key string) (value bool, present bool, err error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return false, false, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, true, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, true, fmt.Errorf("%s must be a boolean", key)
		}
		return b, true, nil
	default:
		return false, true, fmt.Errorf("%s must be a boolean", key)
	}
}

// GetInt returns an integer argument, or def when absent
func GetInt(args map[string]interface{}, key string, def int) (int, error) {
	switch v := args[key].(type) {
	case nil:
		return def, nil
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}

// GetStringSlice returns a list-of-strings argument. A JSON array or a
// comma-separated string are both accepted; absent means nil.
func GetStringSlice(args map[string]interface{}, key string) ([]string, error) {
	switch v := args[key].(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", key, i)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}, nil
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
}

// RequireStringSlice is GetStringSlice for arguments that must be present.
// An explicitly empty list is accepted.
func RequireStringSlice(args map[string]interface{}, key string) ([]string, error) {
	if args[key] == nil {
		return nil, fmt.Errorf("%s parameter is required", key)
	}
	v, err := GetStringSlice(args, key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = []string{}
	}
	return v, nil
}

// GetTargetEntities decodes target_entities, a list of
// {"identifier": ..., "entity_type": ...} objects
func GetTargetEntities(args map[string]interface{}, key string) ([]soar.TargetEntity, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be a list of objects", key)
	}

	out := make([]soar.TargetEntity, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be an object", key, i)
		}
		identifier, _ := obj["identifier"].(string)
		entityType, _ := obj["entity_type"].(string)
		if identifier == "" || entityType == "" {
			return nil, fmt.Errorf("%s[%d] needs both identifier and entity_type", key, i)
		}
		out = append(out, soar.TargetEntity{Identifier: identifier, EntityType: entityType})
	}
	return out, nil
}
