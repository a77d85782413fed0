package validate

import (
	"sort"
	"strings"
)

// FieldsError carries the translated validation message of every failing
// field, keyed by its json name.
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}

// Error lists the failing fields in name order.
func (f *FieldsError) Error() string {
	if len(f.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(f.Fields))
	for name := range f.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, f.Fields[name])
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (f *FieldsError) Has(field string) bool {
	_, ok := f.Fields[field]
	return ok
}
