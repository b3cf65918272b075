package world

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"
)

// splitAspectRatio forces a split across the long axis of elongated cells.
const splitAspectRatio = 1.25

// leaf is a node in the BSP tree.
// A node with children never carves a room of its own.
type leaf struct {
	x, y          int
	width, height int

	minSize       int
	minRoomWidth  int
	minRoomHeight int

	left, right *leaf
	room        *Room
	corridors   []Room
}

func newLeaf(x, y, width, height, minSize, minRoomWidth, minRoomHeight int) *leaf {
	return &leaf{
		x:             x,
		y:             y,
		width:         width,
		height:        height,
		minSize:       minSize,
		minRoomWidth:  minRoomWidth,
		minRoomHeight: minRoomHeight,
	}
}

// child creates a node that inherits this node's size constraints.
func (l *leaf) child(x, y, width, height int) *leaf {
	return newLeaf(x, y, width, height, l.minSize, l.minRoomWidth, l.minRoomHeight)
}

// isLeaf returns true if this node has no children.
func (l *leaf) isLeaf() bool {
	return l.left == nil && l.right == nil
}

// generate recursively splits the node, depth first, left before right.
func (l *leaf) generate(rng *rand.Rand) {
	if !l.isLeaf() {
		return
	}
	if l.split(rng) {
		l.left.generate(rng)
		l.right.generate(rng)
	}
}

// split divides the node in two, returning false when it is too small.
// The orientation coin is always drawn, even when the aspect rule overrides it.
func (l *leaf) split(rng *rand.Rand) bool {
	splitHorizontally := rng.Intn(2) == 1

	w, h := float64(l.width), float64(l.height)
	if l.width > l.height && w/h >= splitAspectRatio {
		splitHorizontally = false
	} else if l.height > l.width && h/w >= splitAspectRatio {
		splitHorizontally = true
	}

	maxPos := l.width - l.minSize
	if splitHorizontally {
		maxPos = l.height - l.minSize
	}
	if maxPos <= l.minSize {
		return false
	}

	splitPos := l.minSize + rng.Intn(maxPos-l.minSize)

	if splitHorizontally {
		l.left = l.child(l.x, l.y, l.width, splitPos)
		l.right = l.child(l.x, l.y+splitPos, l.width, l.height-splitPos)
	} else {
		l.left = l.child(l.x, l.y, splitPos, l.height)
		l.right = l.child(l.x+splitPos, l.y, l.width-splitPos, l.height)
	}
	return true
}

// createRooms carves one room in every terminal node, children first.
func (l *leaf) createRooms(rng *rand.Rand) {
	if l.left != nil {
		l.left.createRooms(rng)
	}
	if l.right != nil {
		l.right.createRooms(rng)
	}
	if !l.isLeaf() {
		return
	}

	width := l.minRoomWidth + rng.Intn(l.width-l.minRoomWidth+1)
	height := l.minRoomHeight + rng.Intn(l.height-l.minRoomHeight+1)
	x := rng.Intn(l.width - width + 1)
	y := rng.Intn(l.height - height + 1)

	room := NewRoom("bsp room", l.x+x, l.y+y, width, height)
	l.room = &room
}

// firstRoom returns a representative room for the subtree.
// The left subtree wins whenever it holds any room.
func (l *leaf) firstRoom() (Room, bool) {
	if l.isLeaf() {
		if l.room == nil {
			return Room{}, false
		}
		return *l.room, true
	}
	if l.left != nil {
		if room, ok := l.left.firstRoom(); ok {
			return room, true
		}
	}
	if l.right != nil {
		return l.right.firstRoom()
	}
	return Room{}, false
}

// walk visits every node in pre-order using an explicit pending stack.
// Right children are pushed first so leaves come out left to right.
func (l *leaf) walk(fn func(*leaf)) {
	pending := stack.New[*leaf]()
	pending.Push(l)
	for pending.Size() > 0 {
		node := pending.Pop()
		fn(node)
		if node.right != nil {
			pending.Push(node.right)
		}
		if node.left != nil {
			pending.Push(node.left)
		}
	}
}

// leaves returns the terminal nodes in left-to-right order.
func (l *leaf) leaves() []*leaf {
	var out []*leaf
	l.walk(func(n *leaf) {
		if n.isLeaf() {
			out = append(out, n)
		}
	})
	return out
}
