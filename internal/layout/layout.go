// Package layout places variable-width tags on a single horizontal row.
//
// Frames are rebuilt from scratch on every Prepare pass. There is no diffing
// and no wrapping: items flow left to right, each one vertically centered in
// the container.
package layout

// DefaultSpacing is the gap inserted after every item.
const DefaultSpacing = 8.0

// Size is a width/height pair in layout units.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Intersects reports whether r and o overlap with a non-empty area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Frame is the computed geometry of one item.
type Frame struct {
	Index int
	Rect
}

// DataSource reports how many items the layout has to place.
type DataSource interface {
	NumberOfItems() int
}

// Delegate supplies the preferred size of each item.
type Delegate interface {
	SizeForItem(index int) Size
}

// Compute places itemCount items left to right starting at leftInset.
// Each item is centered vertically in containerHeight and the running offset
// advances by the item width plus spacing after every item, the last included.
func Compute(itemCount int, sizeFor func(int) Size, containerHeight, leftInset, spacing float64) []Frame {
	if itemCount <= 0 || sizeFor == nil {
		return []Frame{}
	}

	frames := make([]Frame, 0, itemCount)
	offsetX := leftInset
	for i := 0; i < itemCount; i++ {
		size := sizeFor(i)
		frames = append(frames, Frame{
			Index: i,
			Rect: Rect{
				X:      offsetX,
				Y:      containerHeight/2 - size.Height/2,
				Width:  size.Width,
				Height: size.Height,
			},
		})
		offsetX += size.Width + spacing
	}
	return frames
}

// TagLayout caches the frames of the last Prepare pass.
type TagLayout struct {
	dataSource DataSource
	delegate   Delegate

	containerHeight float64
	leftInset       float64
	spacing         float64

	frames []Frame
}

// NewTagLayout creates a layout with the default spacing and no container.
func NewTagLayout() *TagLayout {
	return &TagLayout{
		spacing: DefaultSpacing,
		frames:  make([]Frame, 0),
	}
}

// SetDataSource sets the item count provider.
func (l *TagLayout) SetDataSource(ds DataSource) {
	l.dataSource = ds
}

// SetDelegate sets the item size provider.
func (l *TagLayout) SetDelegate(d Delegate) {
	l.delegate = d
}

// SetContainer sets the container height and the leading content inset.
func (l *TagLayout) SetContainer(height, leftInset float64) {
	l.containerHeight = height
	l.leftInset = leftInset
}

// SetSpacing sets the gap placed after each item.
func (l *TagLayout) SetSpacing(spacing float64) {
	l.spacing = spacing
}

// Spacing returns the gap placed after each item.
func (l *TagLayout) Spacing() float64 {
	return l.spacing
}

// Prepare rebuilds every frame. Without a data source or delegate the pass is
// skipped and the previous frames stay cached.
func (l *TagLayout) Prepare() {
	if l.dataSource == nil || l.delegate == nil {
		return
	}
	l.frames = Compute(l.dataSource.NumberOfItems(), l.delegate.SizeForItem, l.containerHeight, l.leftInset, l.spacing)
}

// ContentSize returns the scrollable size: the right edge of the last frame
// by the container height.
func (l *TagLayout) ContentSize() Size {
	width := 0.0
	if n := len(l.frames); n > 0 {
		width = l.frames[n-1].MaxX()
	}
	return Size{Width: width, Height: l.containerHeight}
}

// FrameAt returns the cached frame for index, or false when out of range.
func (l *TagLayout) FrameAt(index int) (Frame, bool) {
	if index < 0 || index >= len(l.frames) {
		return Frame{}, false
	}
	return l.frames[index], true
}

// FramesIn returns every cached frame regardless of rect.
func (l *TagLayout) FramesIn(rect Rect) []Frame {
	frames := make([]Frame, len(l.frames))
	copy(frames, l.frames)
	return frames
}

// ItemAt returns the index of the frame containing the point.
func (l *TagLayout) ItemAt(x, y float64) (int, bool) {
	for _, f := range l.frames {
		if f.Contains(x, y) {
			return f.Index, true
		}
	}
	return -1, false
}

// Len returns the number of cached frames.
func (l *TagLayout) Len() int {
	return len(l.frames)
}
