package genai

import "fmt"

// NormalizeContents coerces the accepted request content shapes into a
// canonical ordered sequence of turns:
//
//   - []Turn is returned unchanged (identity)
//   - a single Turn becomes a one-element sequence
//   - a plain string becomes a single user turn with one text part
//   - a single Part becomes a single user turn wrapping it
//   - a flat []Part becomes a single user turn whose parts equal the slice
//
// Any other value degrades to a single user turn carrying its fmt-rendered
// text; normalization never fails.
func NormalizeContents(v any) []Turn {
	switch c := v.(type) {
	case nil:
		return nil
	case []Turn:
		return c
	case Turn:
		return []Turn{c}
	case *Turn:
		if c == nil {
			return nil
		}
		return []Turn{*c}
	case string:
		return []Turn{{Role: RoleUser, Parts: []Part{TextPart(c)}}}
	case Part:
		return []Turn{{Role: RoleUser, Parts: []Part{c}}}
	case *Part:
		if c == nil {
			return nil
		}
		return []Turn{{Role: RoleUser, Parts: []Part{*c}}}
	case []Part:
		return []Turn{{Role: RoleUser, Parts: c}}
	default:
		return []Turn{{Role: RoleUser, Parts: []Part{TextPart(fmt.Sprintf("%v", c))}}}
	}
}
