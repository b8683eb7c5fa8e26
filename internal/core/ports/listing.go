package ports

// SortField is a single sort key parsed from "field:dir" query syntax.
type SortField struct {
	Field string
	Desc  bool
}

// PageRequest carries pagination and sorting for collection reads.
// Services normalise Page to >= 1 and cap Limit.
type PageRequest struct {
	Page  int
	Limit int
	Sort  []SortField
}

// PageMeta describes one page of a scoped result set. Total is counted over
// the same query-time filter as the page itself, so page boundaries are
// always consistent with what the caller may see.
type PageMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}
