package cache

import (
	"encoding/json"
	"fmt"
)

// searchKey fixes the field order of the serialized tuple.
type searchKey struct {
	Search     string `json:"search"`
	Page       int    `json:"page"`
	MaxResults int64  `json:"maxResults"`
}

// SearchKey derives the cache key for a (search, page, maxResults) tuple.
func SearchKey(search string, page int, maxResults int64) string {
	raw, err := json.Marshal(searchKey{Search: search, Page: page, MaxResults: maxResults})
	if err != nil {
		// A struct of a string and two ints always marshals.
		return fmt.Sprintf("%q|%d|%d", search, page, maxResults)
	}
	return string(raw)
}
