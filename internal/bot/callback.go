package bot

import (
	"strconv"
	"strings"
)

// CallbackData is a decoded button payload of the form
// <namespace>:<action>[:<args...>]. Decoding happens once at the transport
// boundary; handlers never split strings themselves.
type CallbackData struct {
	Namespace string
	Action    string
	Args      []string
}

// ParseCallback decodes a raw callback payload.
func ParseCallback(raw string) CallbackData {
	parts := strings.Split(raw, ":")
	data := CallbackData{Namespace: parts[0]}
	if len(parts) > 1 {
		data.Action = parts[1]
	}
	if len(parts) > 2 {
		data.Args = parts[2:]
	}
	return data
}

// IntArg returns the i-th argument as an integer, or 0 when absent or
// malformed.
func (d CallbackData) IntArg(i int) int64 {
	if i >= len(d.Args) {
		return 0
	}
	n, err := strconv.ParseInt(d.Args[i], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// String re-encodes the payload.
func (d CallbackData) String() string {
	parts := append([]string{d.Namespace, d.Action}, d.Args...)
	return strings.Join(parts, ":")
}
