package app

import (
	"encoding/json"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Render returns the record in the requested output format. "text" (or
// empty) produces the console report; "json" and "yaml" produce
// machine-readable records for pipeline callers.
func Render(rec Record, format string) (string, error) {
	switch format {
	case "", "text":
		return renderText(rec), nil
	case "json":
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(b) + "\n", nil
	case "yaml":
		b, err := yaml.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown output format: %q", format)
	}
}

func renderText(rec Record) string {
	heavy := strings.Repeat("=", 80)
	light := strings.Repeat("-", 80)
	status := "FAILED"
	if rec.Success {
		status = "SUCCESS"
	}

	var b strings.Builder
	b.WriteString("\n" + heavy + "\n")
	b.WriteString("NEWS ARTICLE SCRAPER\n")
	b.WriteString(heavy + "\n")
	fmt.Fprintf(&b, "URL: %s\n", rec.URL)
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Content Length: %d characters\n", rec.ContentLength)
	b.WriteString(light + "\n")
	fmt.Fprintf(&b, "TITLE: %s\n", rec.Title)
	fmt.Fprintf(&b, "AUTHOR: %s\n", rec.Author)
	b.WriteString(light + "\n")
	b.WriteString("CONTENT:\n")
	b.WriteString(rec.Content + "\n")
	b.WriteString(heavy + "\n")
	return b.String()
}
