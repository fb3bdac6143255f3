package model

import (
	"bytes"
	"encoding/json"

	"github.com/bookly/bookly-cli/util"
)

// List accepts the two collection shapes the backend returns: the paginated
// envelope {count, results} and a bare array. Views always read Results.
type List[T any] struct {
	Count   *int
	Results []T
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		l.Count = nil
		l.Results = nil
		return nil
	}
	if data[0] == '[' {
		l.Count = nil
		return json.Unmarshal(data, &l.Results)
	}
	var envelope struct {
		Count   *int `json:"count"`
		Results []T  `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	l.Count = envelope.Count
	l.Results = envelope.Results
	return nil
}

// PageCount derives the number of pages from the envelope count. Without a
// count the whole collection arrived at once and there is a single page.
func (l *List[T]) PageCount(pageSize int) int {
	if l.Count == nil {
		return 1
	}
	return util.PageCount(*l.Count, pageSize)
}

func (l *List[T]) Len() int {
	return len(l.Results)
}
