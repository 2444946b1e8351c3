// SPDX-License-Identifier: EPL-2.0

package space

// Line is the identity embedding of an index into a single dimension.
type Line struct {
	length uint32
}

func NewLine(length uint32) *Line {
	return &Line{length: length}
}

func (l *Line) Dims() int { return 1 }

func (l *Line) Length(dim int) uint32 {
	checkDim(dim, 1)

	return l.length
}

// Size is the line length itself. It stays correct when the line is lifted
// into more dimensions whose extra lengths are 1.
func (l *Line) Size() uint64 { return uint64(l.length) }

func (l *Line) IndexToCoord(index uint64) (Coord, bool) {
	if index >= l.Size() {
		return nil, false
	}

	return Coord{uint32(index)}, true
}
