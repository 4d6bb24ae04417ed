package sim

// NodeKind distinguishes renderable meshes from grouping nodes so that
// positional lookups can filter out non-geometry.
type NodeKind int

const (
	NodeKindGroup NodeKind = iota
	NodeKindMesh
)

// Node is a minimal scene-graph node. The animation core only ever
// mutates Position and Rotation; creation and ownership stay with
// whoever built the tree.
type Node struct {
	Name     string
	Kind     NodeKind
	Position Vec3 // world units for the root, parent-local offsets below it
	Rotation Vec3 // Euler radians: X pitch, Y yaw, Z roll
	Size     Vec3 // render extents, ignored by the animation core
	Children []*Node
}

// AddChild appends and returns the child so builders can chain.
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return c
}

// FindDescendant returns the first node with the given name in
// depth-first, declaration order, or nil. Traversal order is part of the
// contract: rotor spin parity is assigned by discovery index.
func (n *Node) FindDescendant(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if hit := c.FindDescendant(name); hit != nil {
			return hit
		}
	}
	return nil
}

// DescendantsMatching collects every descendant satisfying pred, in the
// same deterministic depth-first order as FindDescendant.
func (n *Node) DescendantsMatching(pred func(*Node) bool) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if pred(c) {
			out = append(out, c)
		}
		out = append(out, c.DescendantsMatching(pred)...)
	}
	return out
}

// Rotor arm offsets, quad X layout. Same footprint the real airframe
// geometry uses: arms reach further from the hub than any other mesh so
// the distance heuristic finds them.
const (
	rotorArmX = 0.55
	rotorArmZ = 0.55
)

// DefaultRotorNames is the well-known name list checked before falling
// back to the positional heuristic.
var DefaultRotorNames = []string{"propeller1", "propeller2", "propeller3", "propeller4"}

// NewQuadcopterNode builds the stand-in vehicle model: a body slab, four
// named propeller blades on arm tips, and two landing skids. Child
// declaration order fixes rotor parity: 1 and 3 spin clockwise, 2 and 4
// counter-clockwise.
func NewQuadcopterNode() *Node {
	root := &Node{Name: "quadcopter", Kind: NodeKindGroup}

	root.AddChild(&Node{
		Name: "body",
		Kind: NodeKindMesh,
		Size: Vec3{0.8, 0.25, 0.8},
	})

	arms := []Vec3{
		{rotorArmX, 0.18, rotorArmZ},
		{rotorArmX, 0.18, -rotorArmZ},
		{-rotorArmX, 0.18, rotorArmZ},
		{-rotorArmX, 0.18, -rotorArmZ},
	}
	for i, at := range arms {
		root.AddChild(&Node{
			Name:     DefaultRotorNames[i],
			Kind:     NodeKindMesh,
			Position: at,
			Size:     Vec3{0.7, 0.03, 0.08},
		})
	}

	for _, zx := range []float64{0.3, -0.3} {
		root.AddChild(&Node{
			Name:     "skid",
			Kind:     NodeKindMesh,
			Position: Vec3{zx, -0.2, 0},
			Size:     Vec3{0.08, 0.08, 0.9},
		})
	}
	return root
}
