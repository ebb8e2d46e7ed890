package rain

const (
	CellWidth  = 20
	CellHeight = 20
)

// Viewport is the host drawing area in pixels.
type Viewport struct {
	Width, Height int
}

// ColumnCount returns floor(width/CellWidth) + 1.
func ColumnCount(width int) int {
	if width < 0 {
		width = 0
	}
	return width/CellWidth + 1
}

// ResizeCoordinator recomputes the viewport and rebuilds the column store
// whenever the host size changes.
type ResizeCoordinator struct {
	store *ColumnStore
	vp    Viewport
	cols  int
}

func NewResizeCoordinator(store *ColumnStore) *ResizeCoordinator {
	return &ResizeCoordinator{store: store}
}

// Resize is unconditional: in-flight positions are discarded even when the
// column count does not change.
func (c *ResizeCoordinator) Resize(width, height int) {
	c.vp = Viewport{Width: width, Height: height}
	c.cols = ColumnCount(width)
	c.store.Init(c.cols)
}

func (c *ResizeCoordinator) Viewport() Viewport { return c.vp }

func (c *ResizeCoordinator) Columns() int { return c.cols }
