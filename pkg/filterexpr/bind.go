package filterexpr

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	orderKeyType = reflect.TypeOf([]OrderKey(nil))
)

// Bind parses the request filter and order_by and populates the params struct. Each
// predicate lands in the field its rule names for the operator; the resolved ordering is
// stored in a field named OrderBy of type []OrderKey.
func Bind[M Msg](msg M, params any, schema Schema) error {
	dest, err := structTarget(params)
	if err != nil {
		return err
	}

	preds, err := Parse(msg.GetFilter(), schema.Fields)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	for _, pred := range preds {
		rule := schema.Fields[pred.Field]
		if err := assignPredicate(dest, rule, pred); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
	}

	keys, err := ParseOrder(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return fmt.Errorf("order_by: %w", err)
	}
	field := dest.FieldByName("OrderBy")
	if !field.IsValid() || field.Type() != orderKeyType || !field.CanSet() {
		return fmt.Errorf("params struct %s needs a settable OrderBy []filterexpr.OrderKey field", dest.Type())
	}
	field.Set(reflect.ValueOf(keys))
	return nil
}

func structTarget(params any) (reflect.Value, error) {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, errors.New("params must be a non-nil pointer")
	}
	dest := rv.Elem()
	if dest.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("params must point to a struct")
	}
	return dest, nil
}

func assignPredicate(dest reflect.Value, rule FieldRule, pred Predicate) error {
	name := rule.Ops[pred.Op]
	field := dest.FieldByName(name)
	if !field.IsValid() {
		return fmt.Errorf("params struct %s has no field named %q", dest.Type(), name)
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field %q on params struct", name)
	}

	if rule.Setter != nil {
		if field.Kind() == reflect.Ptr && field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		if err := rule.Setter(field, pred.Value); err != nil {
			return fmt.Errorf("setter for field %q failed: %w", name, err)
		}
		return nil
	}
	if err := assign(field, pred.Value); err != nil {
		return fmt.Errorf("failed to assign field %q: %w", name, err)
	}
	return nil
}

func assign(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	case reflect.Interface:
		field.Set(reflect.ValueOf(value))
		return nil
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("expected string-compatible destination, got %s", field.Kind())
		}
		field.SetString(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("expected slice of strings destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(append([]string(nil), v...)))
	case float64:
		return assignNumber(field, v)
	case time.Time:
		if field.Type() != timeType {
			return fmt.Errorf("expected time.Time destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(v))
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}

func assignNumber(field reflect.Value, value float64) error {
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		field.SetFloat(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.Trunc(value) != value {
			return fmt.Errorf("cannot assign non-integer value %v to integer field", value)
		}
		if field.OverflowInt(int64(value)) {
			return fmt.Errorf("value %v overflows integer field", value)
		}
		field.SetInt(int64(value))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if math.Trunc(value) != value || value < 0 {
			return fmt.Errorf("cannot assign %v to unsigned integer field", value)
		}
		if field.OverflowUint(uint64(value)) {
			return fmt.Errorf("value %v overflows unsigned integer field", value)
		}
		field.SetUint(uint64(value))
		return nil
	default:
		return fmt.Errorf("numeric assignment requires integer or float field, got %s", field.Kind())
	}
}
