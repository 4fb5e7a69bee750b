package domain

import "encoding/json"

// raw keeps the exact bytes an entity was decoded from so that it can be
// written back out unchanged, including fields this package does not model.
type raw struct {
	data json.RawMessage
}

func (r *raw) keep(data []byte) {
	r.data = append(json.RawMessage(nil), data...)
}

func (r raw) bytes() (json.RawMessage, bool) {
	return r.data, len(r.data) > 0
}
