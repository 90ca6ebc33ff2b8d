package order

import "github.com/forkful/mise/internal/collection"

// MoveBetween removes the element at srcIdx from source and inserts it at
// dstIdx into dest, reindexing both resulting lists independently to
// 0..n-1.
//
// dstIdx may equal len(dest): that means append. The moved record carries
// its pre-removal data; only its position is rewritten.
//
// Moving the last element out leaves source empty. Whether an emptied
// section is then deleted or kept is the lifecycle layer's policy, not
// this primitive's.
func MoveBetween[T collection.Positioned[T]](source, dest []T, srcIdx, dstIdx int) ([]T, []T, error) {
	if len(source) == 0 {
		return nil, nil, &Error{
			Code:    ErrCodeEmptySource,
			Message: "cannot move out of an empty list",
			Index:   srcIdx,
			Length:  0,
		}
	}
	if srcIdx < 0 || srcIdx >= len(source) {
		return nil, nil, indexError("source", srcIdx, len(source))
	}
	if dstIdx < 0 || dstIdx > len(dest) {
		return nil, nil, indexError("destination", dstIdx, len(dest)+1)
	}

	moved := source[srcIdx]

	newSource := make([]T, 0, len(source)-1)
	newSource = append(newSource, source[:srcIdx]...)
	newSource = append(newSource, source[srcIdx+1:]...)

	newDest := make([]T, 0, len(dest)+1)
	newDest = append(newDest, dest[:dstIdx]...)
	newDest = append(newDest, moved)
	newDest = append(newDest, dest[dstIdx:]...)

	// Both lists are in final order; stamp positions by index.
	for i := range newSource {
		newSource[i] = newSource[i].WithPos(i)
	}
	for i := range newDest {
		newDest[i] = newDest[i].WithPos(i)
	}
	return newSource, newDest, nil
}
