package formatters

import "gopkg.in/yaml.v3"

// YAMLFormatter formats reports as YAML, the format the estimator's report
// files have historically used.
type YAMLFormatter struct{}

// Format converts the report to YAML.
func (f *YAMLFormatter) Format(report Report) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
