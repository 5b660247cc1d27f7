package reader

import "strings"

// Options control how Extract slices content around a hit.
type Options uint8

const (
	// StopAfterKey advances the reader past the delimiter.
	StopAfterKey Options = 1 << iota
	// DiscardKey leaves the delimiter out of the returned content.
	// Only meaningful together with StopAfterKey.
	DiscardKey
	// ReadToEnd treats a missing delimiter as a hit at the end of input.
	ReadToEnd
	// TrimStart strips leading whitespace from the returned content.
	TrimStart
	// TrimEnd strips trailing whitespace from the returned content.
	TrimEnd

	// Default sets no options.
	Default Options = 0
	// Trim strips whitespace on both sides.
	Trim = TrimStart | TrimEnd
	// Consume advances past the delimiter and drops it from the content.
	Consume = StopAfterKey | DiscardKey
	// Field reads one delimited field: consume the delimiter, or take the
	// rest of the input when it is the last field.
	Field = Consume | ReadToEnd
)

// Has reports whether all of flags are set.
func (o Options) Has(flags Options) bool { return o&flags == flags }

var optionNames = []struct {
	flag Options
	name string
}{
	{StopAfterKey, "StopAfterKey"},
	{DiscardKey, "DiscardKey"},
	{ReadToEnd, "ReadToEnd"},
	{TrimStart, "TrimStart"},
	{TrimEnd, "TrimEnd"},
}

func (o Options) String() string {
	if o == Default {
		return "Default"
	}
	var names []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
