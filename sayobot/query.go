package sayobot

import (
	"net/url"
	"strings"
)

// query is an ordered set of key=value pairs. Unlike url.Values it keeps
// insertion order, so the same builder always produces the same URL.
type query struct {
	keys   []string
	values []string
}

func (q *query) set(key, value string) {
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
}

func (q *query) len() int {
	return len(q.keys)
}

func (q *query) encode() string {
	var b strings.Builder
	for i, key := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[i]))
	}
	return b.String()
}

// queryURL appends the encoded query to base, failing when nothing is set.
func queryURL(base string, q *query) (string, error) {
	if q.len() == 0 {
		return "", ErrEmptyParameters
	}
	return base + "?" + q.encode(), nil
}
