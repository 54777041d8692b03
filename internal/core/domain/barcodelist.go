package domain

import (
	"encoding/json"
	"strings"
)

// ParseBarcodeList parses the legacy single-column barcode list. Three
// historical storage formats exist and are tried in fixed priority
// order: comma-delimited, JSON array, newline-delimited. Anything that
// fits no format degrades to an empty list, never an error.
func ParseBarcodeList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.Contains(raw, ",") && !strings.HasPrefix(raw, "[") {
		return splitClean(raw, ",")
	}

	if strings.HasPrefix(raw, "[") {
		var vs []string
		if err := json.Unmarshal([]byte(raw), &vs); err == nil {
			return cleanList(vs)
		}
		return nil
	}

	if strings.Contains(raw, "\n") {
		return splitClean(raw, "\n")
	}

	return []string{raw}
}

func splitClean(raw, sep string) []string {
	return cleanList(strings.Split(raw, sep))
}

func cleanList(vs []string) []string {
	var out []string
	for _, v := range vs {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
