package domain

// MembershipKind selects one of the per-user recipe sets
type MembershipKind string

const (
	MembershipFavorite     MembershipKind = "favorite"
	MembershipShoppingCart MembershipKind = "shopping_cart"
)

// Valid reports whether k names a known set
func (k MembershipKind) Valid() bool {
	return k == MembershipFavorite || k == MembershipShoppingCart
}

// Table returns the backing table of the set
func (k MembershipKind) Table() string {
	switch k {
	case MembershipFavorite:
		return "favorites"
	case MembershipShoppingCart:
		return "shopping_cart"
	default:
		return ""
	}
}

// Membership is one (user, recipe) pair in a favorite or cart set
type Membership struct {
	Kind     MembershipKind `json:"kind"`
	UserID   int64          `json:"user"`
	RecipeID int64          `json:"recipe"`
}
