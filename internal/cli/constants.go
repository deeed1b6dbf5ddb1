package cli

// Default values for CLI output formatting.
const (
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
)
