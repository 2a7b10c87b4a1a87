package inspect

// InspectOptions controls Inspect.
type InspectOptions struct {
	// CaseInsensitive folds keyword case while tokenizing.
	CaseInsensitive bool
	// Strict returns parse errors instead of recording them as notes.
	Strict bool
}

// ColumnRef is a column the query touches. Usage is "select" for projected
// columns and "filter" for columns compared in the where clause.
type ColumnRef struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
}

// InspectResult is a flat summary of one query, suitable for JSON.
type InspectResult struct {
	Statement string      `json:"statement"` // get, create, destroy, use, show or invalid
	Tables    []string    `json:"tables,omitempty"`
	Databases []string    `json:"databases,omitempty"`
	Columns   []ColumnRef `json:"columns,omitempty"`
	Wildcard  bool        `json:"wildcard,omitempty"`
	Limit     *int32      `json:"limit,omitempty"`
	Notes     []string    `json:"notes,omitempty"`
}
