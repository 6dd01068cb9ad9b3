package domain

// ShoppingRow is one ingredient link of a recipe in a user's cart
type ShoppingRow struct {
	Name   string
	Unit   string
	Amount int
}

// ShoppingLine is the total amount for one (name, unit) pair
type ShoppingLine struct {
	Name   string `json:"name"`
	Unit   string `json:"measurement_unit"`
	Amount int64  `json:"amount"`
}

// ShoppingList is the ordered aggregate of a cart
type ShoppingList struct {
	Lines []ShoppingLine `json:"lines"`
}
