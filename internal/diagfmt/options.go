package diagfmt

// PrettyOpts configures the human-readable formatters.
type PrettyOpts struct {
	// Color enables ANSI colors for severities and node kinds.
	Color bool
	// ShowPreview prints the offending source line with a caret underline.
	ShowPreview bool
	// Verbose includes warnings of the verbose level, которые по
	// умолчанию скрыты.
	Verbose bool
}

// JSONOpts configures the JSON formatters.
type JSONOpts struct {
	IncludePositions bool // добавить line/col к каждой локации
	Max              int  // обрезка списка диагностик, 0 — без лимита
}
