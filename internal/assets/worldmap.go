package assets

import (
	"fmt"

	corebytes "github.com/mthorne/arenafile/internal/core/bytes"
)

// NumWorldMapMasks is the number of hit-test masks in the world map menu
// file: nine provinces plus the Exit button.
const NumWorldMapMasks = 10

// ExitMaskIndex is the mask slot holding the Exit button instead of a
// province.
const ExitMaskIndex = 9

// worldMapMaskOffset is where the mask bits begin inside the world map menu
// file.
const worldMapMaskOffset = 0x87D5

// Rect is a screen-space rectangle with inclusive top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// maskRects gives each mask's screen rectangle. The mask bits in the file
// are packed in this order.
var maskRects = [NumWorldMapMasks]Rect{
	{37, 32, 86, 57},
	{47, 53, 90, 62},
	{113, 29, 88, 53},
	{190, 31, 102, 93},
	{31, 131, 65, 52},
	{100, 118, 61, 55},
	{144, 119, 50, 57},
	{204, 116, 67, 67},
	{103, 72, 131, 84},
	{279, 188, 37, 11},
}

// AdjustedWidth returns the stride in bytes of one mask row: the rectangle
// width in bits rounded up to whole bytes.
func AdjustedWidth(width int) int {
	return (width + 7) / 8
}

// WorldMapMask is a 1-bit-per-pixel hit-test mask over a rectangle of the
// world map screen. Rows are packed most significant bit first.
type WorldMapMask struct {
	mask []byte
	rect Rect
}

// Rect returns the screen rectangle the mask covers.
func (m *WorldMapMask) Rect() Rect {
	return m.rect
}

// Get reports whether the mask bit at the given screen coordinates is set.
// Points outside the mask's rectangle are never set.
func (m *WorldMapMask) Get(x, y int) bool {
	if !m.rect.Contains(x, y) {
		return false
	}
	relX := x - m.rect.X
	relY := y - m.rect.Y
	maskByte := m.mask[(relX/8)+relY*AdjustedWidth(m.rect.Width)]
	return maskByte&(0x80>>uint(relX%8)) != 0
}

// WorldMapMasks is the full set of world map hit-test masks.
type WorldMapMasks [NumWorldMapMasks]WorldMapMask

// ProvinceAt returns the index of the mask with a set bit at the given
// screen coordinates. The Exit button occupies ExitMaskIndex; every lower
// index is a province. The rectangles overlap where province borders
// interlock, so each mask is consulted in file order.
func (m *WorldMapMasks) ProvinceAt(x, y int) (int, bool) {
	for i := range m {
		if m[i].Get(x, y) {
			return i, true
		}
	}
	return 0, false
}

// ParseWorldMapMasks extracts the hit-test masks from the world map menu
// file. The mask bits for all ten rectangles are packed back to back at a
// fixed offset, each occupying AdjustedWidth(w)*h bytes.
func ParseWorldMapMasks(data []byte) (WorldMapMasks, error) {
	var masks WorldMapMasks
	r := corebytes.NewReader(data)
	if err := r.Seek(worldMapMaskOffset); err != nil {
		return masks, fmt.Errorf("%w: world map file is %d bytes, mask data starts at %#x",
			ErrFormat, len(data), worldMapMaskOffset)
	}

	for i, rect := range maskRects {
		byteCount := AdjustedWidth(rect.Width) * rect.Height
		maskData, err := r.Bytes(byteCount)
		if err != nil {
			return masks, fmt.Errorf("%w: world map mask %d truncated", ErrFormat, i)
		}
		masks[i] = WorldMapMask{mask: maskData, rect: rect}
	}

	return masks, nil
}
