package formatters

import (
	"fmt"
	"strings"
)

// TextFormatter renders the report as the classic verbose text report.
type TextFormatter struct{}

const sectionRule = "------------------------"

// Format renders all report sections as plain text.
func (f *TextFormatter) Format(report Report) (string, error) {
	var sb strings.Builder

	writeSection(&sb, "Mandatory include paths:", report.Classification.Mandatory)
	writeSection(&sb, "Optional include paths:", report.Classification.Optional)

	sb.WriteString("\nAmbiguous include paths:\n")
	sb.WriteString(sectionRule + "\n")
	for _, ambiguous := range report.Classification.Ambiguous {
		fmt.Fprintf(&sb, "%s (alternatives: %s)\n", ambiguous.Path, strings.Join(ambiguous.Alternatives, ", "))
	}

	writeSection(&sb, "Non-existing includes:", report.Classification.NonExisting)

	sb.WriteString("\nCommon include path prefix:\n")
	sb.WriteString(sectionRule + "\n")
	sb.WriteString(report.CommonPrefix + "\n")

	writeSection(&sb, "Internal include list:", report.InternalIncludes)
	writeSection(&sb, "External include list:", report.ExternalIncludes)
	writeSection(&sb, "System include list:", report.SystemIncludes)
	writeSection(&sb, "C source file list:", report.CSourceFiles)
	writeSection(&sb, "Header file list:", report.HeaderFiles)
	writeSection(&sb, "Header folder list:", report.HeaderFolders)
	writeSection(&sb, "C source folder list:", report.CSourceFolders)
	writeSection(&sb, "C and CPP sources with main():", report.SourcesWithMain)

	sb.WriteString("\nInclude statistics:\n")
	sb.WriteString(sectionRule + "\n")
	for _, count := range report.Stats.ByInclude {
		fmt.Fprintf(&sb, "%s: %d\n", count.Token, count.Count)
	}

	return sb.String(), nil
}

func writeSection(sb *strings.Builder, title string, lines []string) {
	sb.WriteString("\n" + title + "\n")
	sb.WriteString(sectionRule + "\n")
	for _, line := range lines {
		sb.WriteString(line + "\n")
	}
}
