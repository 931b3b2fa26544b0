package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// OrderKey is one `key [asc|desc]` segment of an order_by clause.
type OrderKey struct {
	Key  string
	Desc bool
}

// ParseOrder validates raw against schema and returns the effective ordering, always ending
// in the schema fallback key.
func ParseOrder(raw string, schema OrderSchema) ([]OrderKey, error) {
	if schema.Fallback.Key == "" {
		return nil, errors.New("order schema fallback key required")
	}
	if !schema.allows(schema.Fallback.Key) {
		return nil, fmt.Errorf("fallback order key %q missing from schema keys", schema.Fallback.Key)
	}
	for _, k := range schema.Default {
		if !schema.allows(k.Key) {
			return nil, fmt.Errorf("default order key %q missing from schema keys", k.Key)
		}
	}
	limit := schema.MaxKeys
	if limit <= 0 {
		limit = 2
	}

	var keys []OrderKey
	seen := make(map[string]struct{})
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return nil, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}
		key := OrderKey{Key: parts[0]}
		if !schema.allows(key.Key) {
			return nil, fmt.Errorf("field %q cannot be used for ordering", key.Key)
		}
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				key.Desc = true
			default:
				return nil, fmt.Errorf("invalid direction %q for field %q", parts[1], key.Key)
			}
		}
		if _, dup := seen[key.Key]; dup {
			return nil, fmt.Errorf("duplicate order key %q", key.Key)
		}
		seen[key.Key] = struct{}{}
		keys = append(keys, key)
	}
	if len(keys) > limit {
		return nil, fmt.Errorf("order_by supports at most %d keys", limit)
	}

	if len(keys) == 0 {
		keys = append(keys, schema.Default...)
	}
	for _, k := range keys {
		if k.Key == schema.Fallback.Key {
			return keys, nil
		}
	}
	return append(keys, schema.Fallback), nil
}
