package domain

// FilterKind discriminates the filter intent variants.
type FilterKind int

const (
	// FilterNone matches every movie.
	FilterNone FilterKind = iota
	// FilterText is a full-text search over the movie catalog.
	FilterText
	// FilterCast restricts to movies featuring any of the given cast members.
	FilterCast
	// FilterGenres restricts to movies tagged with any of the given genres.
	FilterGenres
)

// Filter is a closed filter-intent variant: exactly one of text, cast, or
// genre search, or nothing. Construct it via the typed constructors or
// FilterFromValues; the zero value matches everything.
type Filter struct {
	kind  FilterKind
	text  string
	names []string
}

// NoFilter returns the match-everything intent.
func NoFilter() Filter { return Filter{} }

// TextFilter returns a full-text search intent for the given query string.
func TextFilter(query string) Filter {
	return Filter{kind: FilterText, text: query}
}

// CastFilter returns a cast-membership intent.
func CastFilter(names ...string) Filter {
	return Filter{kind: FilterCast, names: names}
}

// GenreFilter returns a genre-membership intent.
func GenreFilter(names ...string) Filter {
	return Filter{kind: FilterGenres, names: names}
}

// FilterFromValues resolves possibly-ambiguous caller input into a single
// intent. Precedence when several values are present: text > cast > genres.
func FilterFromValues(text string, cast, genres []string) Filter {
	switch {
	case text != "":
		return TextFilter(text)
	case len(cast) > 0:
		return CastFilter(cast...)
	case len(genres) > 0:
		return GenreFilter(genres...)
	}
	return NoFilter()
}

// Kind returns the active variant.
func (f Filter) Kind() FilterKind { return f.kind }

// Text returns the query string of a text intent.
func (f Filter) Text() string { return f.text }

// Names returns the name set of a cast or genre intent.
func (f Filter) Names() []string { return f.names }
