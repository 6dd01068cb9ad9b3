package domain

// Pagination defaults
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPageNumber bounds page so the row offset fits in an int
	MaxPageNumber = 1_000_000
)

// Identity claim and context keys
const (
	// ClaimSubject holds the user id inside bearer tokens
	ClaimSubject = "sub"
)

// ShoppingListHeader is the first line of every rendered shopping list
const ShoppingListHeader = "Shopping list:"

// ShoppingListFilename is the attachment name of the downloaded shopping list
const ShoppingListFilename = "shopping_list.txt"
