package domain

// User represents a registered user. Accounts are created by the
// authentication service or by the fixture loader.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserView is a user as seen by a viewer
type UserView struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// View projects the user for a viewer
func (u User) View(isSubscribed bool) UserView {
	return UserView{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

// Follow is a subscription of User to Author. The pair is unique and a user
// cannot follow themselves.
type Follow struct {
	UserID   int64 `json:"user"`
	AuthorID int64 `json:"author"`
}

// Subscription is an author from the viewer's subscriptions with a preview
// of their recipes
type Subscription struct {
	UserView
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}
