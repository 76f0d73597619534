package session

import (
	jsoniter "github.com/json-iterator/go"
)

// Callback receives decoded events synchronously and in trace order.
type Callback func(*Event)

// MultiCallback returns a callback calling every non-nil cb in order.
func MultiCallback(cbs ...Callback) Callback {
	var all []Callback
	for _, cb := range cbs {
		if cb != nil {
			all = append(all, cb)
		}
	}
	return func(e *Event) {
		for _, cb := range all {
			cb(e)
		}
	}
}

//nolint:gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONCallback adapts fn to receive every event as JSON. Events that fail
// to encode are dropped.
func JSONCallback(fn func([]byte)) Callback {
	return func(e *Event) {
		data, err := json.Marshal(e)
		if err != nil {
			return
		}
		fn(data)
	}
}
