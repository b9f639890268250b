package model

import "encoding/json"

// Meta carries the opaque pagination cursors of a list response.
type Meta struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Paginated is the cursor-paginated list envelope. Element order is whatever
// the server returned; the client does not follow cursors itself.
type Paginated[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

var paginatedRequired = []string{"data", "meta"}

func (p *Paginated[T]) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, paginatedRequired); err != nil {
		return err
	}
	var env struct {
		Data json.RawMessage `json:"data"`
		Meta Meta            `json:"meta"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return err
	}
	p.Data = items
	p.Meta = env.Meta
	return nil
}
