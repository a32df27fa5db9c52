package physics

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/lixenwraith/contagion/parameter"
	"github.com/lixenwraith/contagion/vmath"
)

// pointEpsilon gives stored points a non-degenerate box, rtreego rejects zero lengths
const pointEpsilon = 0.005

// rtreeItem is one target stored in the tree
type rtreeItem struct {
	index int
	rect  rtreego.Rect
}

func (it *rtreeItem) Bounds() rtreego.Rect {
	return it.rect
}

// RTree bulk-loads the targets into an R-tree every tick and answers box queries
type RTree struct {
	tree  *rtreego.Rtree
	items []rtreeItem
	objs  []rtreego.Spatial
}

func NewRTree() *RTree {
	return &RTree{}
}

func (r *RTree) Name() string {
	return parameter.BroadphaseRTree
}

func (r *RTree) Build(targets []int, at PositionFunc) {
	if cap(r.items) < len(targets) {
		r.items = make([]rtreeItem, 0, len(targets))
		r.objs = make([]rtreego.Spatial, 0, len(targets))
	}
	r.items = r.items[:0]
	r.objs = r.objs[:0]

	for _, idx := range targets {
		p := at(idx)
		rect, err := rtreego.NewRect(
			rtreego.Point{p.X - pointEpsilon, p.Y - pointEpsilon},
			[]float64{2 * pointEpsilon, 2 * pointEpsilon},
		)
		if err != nil {
			continue
		}
		r.items = append(r.items, rtreeItem{index: idx, rect: rect})
	}
	// Pointers taken after the last append so they never dangle
	for i := range r.items {
		r.objs = append(r.objs, &r.items[i])
	}

	r.tree = rtreego.NewTree(2, parameter.RTreeMinChildren, parameter.RTreeMaxChildren, r.objs...)
}

func (r *RTree) Query(dst []int, p vmath.Vec2, radius float64) []int {
	if r.tree == nil || r.tree.Size() == 0 {
		return dst
	}
	bb, err := rtreego.NewRect(
		rtreego.Point{p.X - radius, p.Y - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return dst
	}

	base := len(dst)
	for _, obj := range r.tree.SearchIntersect(bb) {
		dst = append(dst, obj.(*rtreeItem).index)
	}
	sort.Ints(dst[base:])
	return dst
}
