package domain

// MoviePage is one page of movies plus, on the first page only, the exact
// number of documents matching the whole query. Total is nil on later pages;
// callers are expected to keep the page-zero value.
type MoviePage struct {
	Movies []Movie `json:"movies"`
	Total  *int64  `json:"total,omitempty"`
}

// FacetBucket is one histogram bucket of a faceted search.
type FacetBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// FacetPage is the fan-out half of a faceted search: one page of movies and
// the runtime and rating histograms computed over the same match.
type FacetPage struct {
	Movies  []Movie       `json:"movies"`
	Runtime []FacetBucket `json:"runtime"`
	Rating  []FacetBucket `json:"rating"`
}

// FacetResult is a complete faceted search response.
type FacetResult struct {
	FacetPage
	Total int64 `json:"total"`
}
