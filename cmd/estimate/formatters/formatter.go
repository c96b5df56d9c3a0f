package formatters

import "fmt"

// Formatter is the interface all report formatters implement.
type Formatter interface {
	// Format renders the report as a string in the formatter's output
	// format.
	Format(report Report) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "text", "json", "yaml"
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: text, json, yaml)", format)
	}
}
