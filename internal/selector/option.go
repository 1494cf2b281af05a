package selector

import "strings"

// Option is a selectable entry as the picker understands it. Value is the
// picker's identity key; Label is what gets drawn.
type Option struct {
	Label string
	Value string
}

// CloneOptions produces a shallow copy of the provided options.
func CloneOptions(opts []Option) []Option {
	if len(opts) == 0 {
		return nil
	}
	dup := make([]Option, len(opts))
	copy(dup, opts)
	return dup
}

// Labels projects option labels in order.
func Labels(opts []Option) []string {
	labels := make([]string, len(opts))
	for i, opt := range opts {
		labels[i] = opt.Label
	}
	return labels
}

func matchesOption(query string, opt Option) bool {
	q := strings.ToLower(query)
	return strings.ToLower(opt.Label) == q || strings.ToLower(opt.Value) == q
}
