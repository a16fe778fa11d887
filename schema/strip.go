package schema

// StripDescriptions returns a copy of a schema tree with every documentation
// "description" attribute removed, for contexts such as wire distribution
// where the prose is dead weight. Stripping never changes what the schema
// accepts or rejects.
//
// The immediate "description" key of every dictionary node is dropped,
// whatever its value, and the transform recurses into all remaining values,
// dicts and lists alike, preserving key names and list order. The one carve
// out is the value of a "properties" key: that dictionary maps property
// names to subschemas, so a property literally named "description" survives
// (its own nested documentation is still stripped). The input tree is never
// mutated.
func StripDescriptions(node any) any {
	switch t := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			if k == "description" {
				continue
			}
			if k == "properties" {
				if props, ok := v.(map[string]any); ok {
					ps := make(map[string]any, len(props))
					for name, sub := range props {
						ps[name] = StripDescriptions(sub)
					}
					out[k] = ps
					continue
				}
			}
			out[k] = StripDescriptions(v)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = StripDescriptions(t[i])
		}
		return out
	default:
		return node
	}
}
