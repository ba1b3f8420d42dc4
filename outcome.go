package matchas

// textSource is what an Outcome needs from its source to produce text.
type textSource interface {
	Len() int
	Text(i, j int) string
}

// Outcome describes one successful search. Start and End are character
// offsets into the whole source, so Prefix and Suffix are relative to the
// source rather than to the position the search started from.
//
// The zero Outcome has no source; its text accessors return "".
type Outcome struct {
	Start int
	End   int

	src textSource
}

// Text returns the matched characters.
func (o Outcome) Text() string {
	if o.src == nil {
		return ""
	}
	return o.src.Text(o.Start, o.End)
}

// Prefix returns the source text before the match.
func (o Outcome) Prefix() string {
	if o.src == nil {
		return ""
	}
	return o.src.Text(0, o.Start)
}

// Suffix returns the source text after the match.
func (o Outcome) Suffix() string {
	if o.src == nil {
		return ""
	}
	return o.src.Text(o.End, o.src.Len())
}

// Len returns the match length in characters.
func (o Outcome) Len() int {
	return o.End - o.Start
}

// Empty reports whether the match is zero-width.
func (o Outcome) Empty() bool {
	return o.Start == o.End
}
