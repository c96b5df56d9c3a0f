package formatters

import "encoding/json"

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// Format converts the report to indented JSON.
func (f *JSONFormatter) Format(report Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
