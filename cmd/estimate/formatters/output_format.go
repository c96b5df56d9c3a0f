package formatters

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// Extension returns the report file extension for the format.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatJSON:
		return ".json"
	case OutputFormatYAML:
		return ".yml"
	default:
		return ".txt"
	}
}
