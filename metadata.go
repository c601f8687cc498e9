package flogger

// MetadataKey identifies a typed entry in a statement's metadata. Keys are
// compared by identity of their label; callers are expected to declare them
// as package-level values.
type MetadataKey struct {
	label string
}

// NewMetadataKey returns a key with the given label.
func NewMetadataKey(label string) MetadataKey {
	return MetadataKey{label: label}
}

// Label returns the key's label.
func (k MetadataKey) Label() string { return k.label }

// KeyWasForced marks a statement that bypassed severity filtering. It is the
// only key this core consults; everything else is an opaque side channel for
// external collaborators.
var KeyWasForced = NewMetadataKey("was_forced")

// Metadata is an extensible key/value side channel attached to a log
// statement. The zero value is a valid, empty metadata set. Metadata is not
// safe for concurrent mutation; a statement is built by a single owner.
type Metadata struct {
	values map[MetadataKey]any
}

var emptyMetadata = &Metadata{}

// EmptyMetadata returns the shared empty metadata instance. Reads on it
// always succeed and find nothing.
func EmptyMetadata() *Metadata { return emptyMetadata }

// NewMetadata returns a fresh, mutable metadata set.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[MetadataKey]any)}
}

// Set stores val under key, replacing any previous value.
func (m *Metadata) Set(key MetadataKey, val any) {
	if m.values == nil {
		m.values = make(map[MetadataKey]any)
	}
	m.values[key] = val
}

// Find returns the value stored under key, if any.
func (m *Metadata) Find(key MetadataKey) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Metadata) Len() int { return len(m.values) }
