// Package jsonapi provides JSON:API document types for API responses.
package jsonapi

// Document is a JSON:API top-level document.
// See: https://jsonapi.org/format/#document-structure
type Document struct {
	Data   any     `json:"data,omitempty"`
	Meta   Meta    `json:"meta,omitempty"`
	Errors []Error `json:"errors,omitempty"`
}

// Meta holds non-standard meta-information about a document.
type Meta map[string]any

// Resource is a JSON:API resource object.
type Resource struct {
	Type       string `json:"type"`
	ID         string `json:"id,omitempty"`
	Attributes any    `json:"attributes"`
}

// Error is a JSON:API error object.
type Error struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// NewResource wraps attributes in a resource object.
func NewResource(typ, id string, attributes any) Resource {
	return Resource{Type: typ, ID: id, Attributes: attributes}
}

// One returns a document holding a single resource.
func One(r Resource) Document {
	return Document{Data: r}
}

// Many returns a document holding a resource collection. The data member is
// always an array, even when empty.
func Many(rs []Resource, meta Meta) Document {
	if rs == nil {
		rs = []Resource{}
	}
	return Document{Data: rs, Meta: meta}
}
