package registry

import "fmt"

// FieldError reports a missing or malformed field on one descriptor.
type FieldError struct {
	Index int
	// Source is the catalog file the descriptor came from, if known.
	Source string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q %s", label(e.Index, e.Source), e.Field, e.Reason)
}

// DuplicateURLError reports two descriptors sharing one url.
type DuplicateURLError struct {
	URL          string
	First        int
	FirstSource  string
	Second       int
	SecondSource string
}

func (e *DuplicateURLError) Error() string {
	return fmt.Sprintf("%s and %s: duplicate url %q", label(e.First, e.FirstSource), label(e.Second, e.SecondSource), e.URL)
}

// label names a descriptor by its position in the merged catalog and, when
// known, the file it was read from.
func label(index int, source string) string {
	if source == "" {
		return fmt.Sprintf("visualization[%d]", index)
	}
	return fmt.Sprintf("visualization[%d] (%s)", index, source)
}
