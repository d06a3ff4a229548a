package httpx

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order and never merges duplicate keys.
type Params []Param

// Add appends a parameter.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// AddString appends key when v is non-nil.
func (p *Params) AddString(key string, v *string) {
	if v != nil {
		p.Add(key, *v)
	}
}

// AddBool appends key as "true"/"false" when v is non-nil.
func (p *Params) AddBool(key string, v *bool) {
	if v != nil {
		p.Add(key, strconv.FormatBool(*v))
	}
}

// AddInt appends key when v is non-nil.
func (p *Params) AddInt(key string, v *int) {
	if v != nil {
		p.Add(key, strconv.Itoa(*v))
	}
}

// Encode renders the parameters in order as a URL query string.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, kv := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.Value))
	}
	return sb.String()
}
