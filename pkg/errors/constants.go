package errors

// Message templates. Placeholders are substituted by formatMessage so every
// endpoint renders the same wording for the same failure.
const (
	MessageResourceNotFound      = "{resource} with {key} '{value}' not found"
	MessageResourceAlreadyExists = "{resource} with {key} '{value}' already exists"
	MessageInternalServerError   = "Internal Server Error"
	MessageUnhandledException    = "Unhandled exceptions caused " + MessageInternalServerError

	MessageDatabaseNotConfigured = "Database is not configured correctly"
	MessageDatabaseConnection    = "Error connecting to the database"
)
