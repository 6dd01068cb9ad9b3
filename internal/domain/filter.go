package domain

// RecipeFilter narrows recipe listings. Zero values mean "no filter".
type RecipeFilter struct {
	AuthorID         *int64
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
}

// Page is a 1-based page request
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip for the page
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// Normalize clamps the page into valid bounds using the given default limit
func (p Page) Normalize(defaultLimit int) Page {
	p.Number = min(max(p.Number, 1), MaxPageNumber)
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// PageResult is one page of items plus the total count across all pages
type PageResult[T any] struct {
	Count int64
	Items []T
}

// HasNext reports whether a page follows p
func (r PageResult[T]) HasNext(p Page) bool {
	return int64(p.Offset()+len(r.Items)) < r.Count
}
