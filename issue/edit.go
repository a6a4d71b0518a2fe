package issue

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOverlappingEdits is returned when two edits touch the same source range
var ErrOverlappingEdits = errors.New("overlapping edits")

// ApplyEdits returns a copy of src with edits applied, edits may be given in any order
func ApplyEdits(src []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return append([]byte(nil), src...), nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})
	var result []byte
	offset := 0
	for i, edit := range sorted {
		span := edit.Span
		if span.Start < 0 || span.End > len(src) || span.Start > span.End {
			return nil, fmt.Errorf("invalid edit span %v for source of %d bytes", span, len(src))
		}
		if i > 0 && span.Start < offset {
			return nil, fmt.Errorf("%w: %v and %v", ErrOverlappingEdits, sorted[i-1].Span, span)
		}
		result = append(result, src[offset:span.Start]...)
		result = append(result, edit.NewText...)
		offset = span.End
	}
	result = append(result, src[offset:]...)
	return result, nil
}
