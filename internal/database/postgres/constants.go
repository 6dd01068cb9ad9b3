package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation = "23514"
)

// Constraint names declared by the migrations
const (
	ConstraintUniqueIngredientRecipe = "unique_ingredient_recipe"
	ConstraintUniqueFollow           = "unique_follow"
	ConstraintNoSelfFollow           = "no_self_follow"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToListTags           = "failed to list tags"
	ErrMsgFailedToGetTag             = "failed to get tag"
	ErrMsgFailedToGetTagsByIDs       = "failed to get tags by ids"
	ErrMsgFailedToListIngredients    = "failed to list ingredients"
	ErrMsgFailedToGetIngredient      = "failed to get ingredient"
	ErrMsgFailedToGetIngredientsByID = "failed to get ingredients by ids"
	ErrMsgFailedToInsertIngredients  = "failed to insert ingredients"
	ErrMsgFailedToUpsertTags         = "failed to upsert tags"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToGetRecipe           = "failed to get recipe"
	ErrMsgFailedToListRecipes         = "failed to list recipes"
	ErrMsgFailedToCountRecipes        = "failed to count recipes"
	ErrMsgFailedToInsertRecipe        = "failed to insert recipe"
	ErrMsgFailedToUpdateRecipe        = "failed to update recipe"
	ErrMsgFailedToDeleteRecipe        = "failed to delete recipe"
	ErrMsgFailedToLockRecipe          = "failed to lock recipe"
	ErrMsgFailedToClearTags           = "failed to clear recipe tags"
	ErrMsgFailedToAttachTags          = "failed to attach recipe tags"
	ErrMsgFailedToDeleteLinks         = "failed to delete ingredient links"
	ErrMsgFailedToInsertLinks         = "failed to insert ingredient links"
	ErrMsgFailedToDeleteMemberships   = "failed to delete recipe memberships"
	ErrMsgFailedToGetRecipeTags       = "failed to get recipe tags"
	ErrMsgFailedToGetRecipeIngredient = "failed to get recipe ingredients"
	ErrMsgFailedToGetMembershipFlags  = "failed to get membership flags"
)

// Error Messages - Membership Operations
const (
	ErrMsgFailedToCheckMembership  = "failed to check membership"
	ErrMsgFailedToAddMembership    = "failed to add membership"
	ErrMsgFailedToRemoveMembership = "failed to remove membership"
	ErrMsgFailedToGetCartRows      = "failed to get shopping cart rows"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToListUsers      = "failed to list users"
	ErrMsgFailedToCountUsers     = "failed to count users"
	ErrMsgFailedToUpsertUser     = "failed to upsert user"
	ErrMsgFailedToGetFollows     = "failed to get follows"
	ErrMsgFailedToAddFollow      = "failed to add follow"
	ErrMsgFailedToDeleteFollow   = "failed to delete follow"
	ErrMsgFailedToListFollowed   = "failed to list followed authors"
	ErrMsgFailedToGetAuthorRecip = "failed to get author recipes"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToGetEvents     = "failed to get events"
	ErrMsgFailedToCleanupEvents = "failed to clean up events"
)

// Error Messages - Scan
const (
	ErrMsgFailedToScanRow   = "failed to scan row"
	ErrMsgFailedToIterate   = "failed to iterate rows"
	ErrMsgFailedToSendBatch = "failed to execute batch"
)
