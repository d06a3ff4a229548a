package types

// JSONObject is a free-form JSON object, used for caller-owned external data.
type JSONObject = map[string]any

// Page is the paginated envelope returned by list endpoints.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether another page follows.
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Int returns a pointer to an int.
func Int(v int) *int {
	return &v
}

// String returns a pointer to a string.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to a bool.
func Bool(v bool) *bool {
	return &v
}
