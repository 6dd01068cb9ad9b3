package recipe

// Error format strings
const (
	ErrMsgBeginTxFailed = "failed to begin transaction: %w"
	ErrMsgCommitFailed  = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgRecipeCreated = "Recipe created"
	LogMsgRecipeUpdated = "Recipe updated"
	LogMsgRecipeDeleted = "Recipe deleted"
	LogMsgNotAuthor     = "Recipe write rejected, actor is not the author"
)
