// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package event

// Event is the uniform record every parser emits and the executor
// consumes. It is treated as immutable by convention: nothing in this
// module mutates an Event's fields map after construction.
type Event struct {
	// Timestamp is seconds since epoch, never absent — defaults to "now"
	// at parse time when a line carries no usable timestamp.
	Timestamp int64
	// Source is a short provenance label ("nginx", "k8s:prod/pod", a
	// file path, ...).
	Source string
	// Fields holds the event's typed attributes, one entry per field
	// name. Dotted names encode flattening of structured inputs.
	Fields map[string]Value
	// Raw is the original input line, when the parser preserved it.
	Raw string
}

// New builds an Event with an initialized, empty Fields map.
func New(source string, timestamp int64) Event {
	return Event{
		Timestamp: timestamp,
		Source:    source,
		Fields:    make(map[string]Value),
	}
}

// Get returns the named field and whether it was present. A field name
// appears at most once per spec.md §3's invariant.
func (e Event) Get(name string) (Value, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

// Set assigns a field, overwriting any prior value under the same name.
func (e Event) Set(name string, v Value) {
	e.Fields[name] = v
}

// Clone returns a deep-enough copy of e suitable for a transform to
// return in place of the input without aliasing the caller's map.
func (e Event) Clone() Event {
	fields := make(map[string]Value, len(e.Fields))
	for k, v := range e.Fields {
		fields[k] = v
	}
	return Event{
		Timestamp: e.Timestamp,
		Source:    e.Source,
		Fields:    fields,
		Raw:       e.Raw,
	}
}
