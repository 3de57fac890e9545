package constants

// Status is the row lifecycle flag. Rows are never physically removed;
// deletion flips ACTIVE to DELETED and every active read path excludes
// DELETED rows.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)
