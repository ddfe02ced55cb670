package logger

// Standard field names for consistent logging.
const (
	FieldService    = "service"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldUserID     = "user_id"
	FieldRole       = "role"
	FieldSection    = "section"
	FieldCollection = "collection"
	FieldDocumentID = "document_id"
)
