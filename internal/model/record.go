package model

// Record is an opaque JSON object as persisted in the key-value store.
// Resource bodies are stored as-is; the server enforces no schema beyond
// the id and timestamp fields it manages itself.
type Record map[string]interface{}

// Record field names managed by the server.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// ID returns the record's id field, or "" when absent or not a string.
func (r Record) ID() string {
	s, _ := r[FieldID].(string)
	return s
}

// StringField returns the named field when it holds a string.
func (r Record) StringField(name string) string {
	s, _ := r[name].(string)
	return s
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
