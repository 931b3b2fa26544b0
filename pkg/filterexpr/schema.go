package filterexpr

import "reflect"

// Msg wraps request DTOs that expose filter and order_by raw inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind describes the kind of literal value a field accepts.
type ValueKind string

const (
	KindString    ValueKind = "string"
	KindNumber    ValueKind = "number"
	KindTimestamp ValueKind = "timestamp"
)

// Op represents a supported comparison operation.
type Op string

const (
	OpEQ  Op = "=="
	OpGTE Op = ">="
	OpLTE Op = "<="
	OpSW  Op = "startsWith"
	OpIN  Op = "in"
)

// SetterFunc allows custom assignment of literal values to struct fields.
type SetterFunc func(field reflect.Value, value any) error

// FieldRule maps a filter identifier to params struct fields, one per allowed operator.
type FieldRule struct {
	Kind   ValueKind
	Ops    map[Op]string
	Setter SetterFunc
}

// OrderSchema whitelists order keys. Default applies when order_by is empty and Fallback is
// appended to every ordering that does not already mention it, keeping results stable.
type OrderSchema struct {
	Keys     []string
	Default  []OrderKey
	Fallback OrderKey
	// MaxKeys caps the number of user supplied keys; zero means 2.
	MaxKeys int
}

// Schema aggregates filtering and ordering rules for a resource.
type Schema struct {
	Fields map[string]FieldRule
	Order  OrderSchema
}

func (s OrderSchema) allows(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	return false
}
