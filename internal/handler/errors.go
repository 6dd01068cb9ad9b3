package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"
	ErrMsgInvalidQuery          = "Invalid query parameters"

	// Catalog error messages
	ErrMsgListTagsFailed        = "Failed to list tags"
	ErrMsgListIngredientsFailed = "Failed to list ingredients"

	// Recipe error messages
	ErrMsgListRecipesFailed  = "Failed to list recipes"
	ErrMsgCreateRecipeFailed = "Failed to create recipe"
	ErrMsgUpdateRecipeFailed = "Failed to update recipe"
	ErrMsgDeleteRecipeFailed = "Failed to delete recipe"
	ErrMsgGetRecipeFailed    = "Failed to get recipe"

	// Membership error messages
	ErrMsgMembershipFailed = "Failed to update recipe list"
	ErrMsgDownloadFailed   = "Failed to build shopping list"

	// User error messages
	ErrMsgListUsersFailed         = "Failed to list users"
	ErrMsgGetUserFailed           = "Failed to get user"
	ErrMsgListSubscriptionsFailed = "Failed to list subscriptions"
	ErrMsgSubscribeFailed         = "Failed to update subscription"
	ErrMsgListActivityFailed      = "Failed to list activity"
)

// Query parameter names
const (
	QueryParamPage             = "page"
	QueryParamLimit            = "limit"
	QueryParamName             = "name"
	QueryParamAuthor           = "author"
	QueryParamTags             = "tags"
	QueryParamIsFavorited      = "is_favorited"
	QueryParamIsInShoppingCart = "is_in_shopping_cart"
	QueryParamRecipesLimit     = "recipes_limit"
	QueryParamType             = "type"
)

// URL parameter names
const (
	URLParamID = "id"
)

// Response header values
const (
	ContentTypePlainText   = "text/plain; charset=utf-8"
	ContentDispositionFile = `attachment; filename="%s"`
)
