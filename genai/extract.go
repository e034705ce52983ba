package genai

import "strings"

// ExtractText recursively flattens arbitrarily nested content into a single
// string for embedding calls. A string resolves to itself; a Turn resolves to
// its parts' extracted texts; a Part resolves to its text value (empty for
// non-text variants). Slices resolve element-wise. Empty extractions are
// filtered out before joining with single spaces.
func ExtractText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case Turn:
		return extractParts(c.Parts)
	case *Turn:
		if c == nil {
			return ""
		}
		return extractParts(c.Parts)
	case Part:
		if c.Kind() == PartKindText {
			return c.Text
		}
		return ""
	case *Part:
		if c == nil {
			return ""
		}
		return ExtractText(*c)
	case []Turn:
		pieces := make([]string, 0, len(c))
		for _, t := range c {
			pieces = append(pieces, ExtractText(t))
		}
		return joinNonEmpty(pieces)
	case []Part:
		return extractParts(c)
	case []string:
		return joinNonEmpty(c)
	case []any:
		pieces := make([]string, 0, len(c))
		for _, e := range c {
			pieces = append(pieces, ExtractText(e))
		}
		return joinNonEmpty(pieces)
	default:
		return ""
	}
}

func extractParts(parts []Part) string {
	pieces := make([]string, 0, len(parts))
	for _, p := range parts {
		pieces = append(pieces, ExtractText(p))
	}
	return joinNonEmpty(pieces)
}

func joinNonEmpty(pieces []string) string {
	kept := pieces[:0:0]
	for _, s := range pieces {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
