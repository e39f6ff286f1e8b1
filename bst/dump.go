package bst

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a human-readable pre-order rendering of the tree structure to
// w (for debugging purposes). Each node occupies one line, indented by its
// depth and tagged with the left/right path from the root as a bitstring
// (0 = left, 1 = right; the root carries an empty path).
//
// The output format carries no compatibility contract.
func (m *Map[K, V]) Dump(w io.Writer) {
	if m.IsEmpty() {
		fmt.Fprintln(w, "<empty>")
		return
	}
	m.dumpNode(w, m.root, "", nil)
}

func (m *Map[K, V]) dumpNode(w io.Writer, n *node[K, V], path string, paint *color.Color) {
	for range len(path) {
		io.WriteString(w, "  ")
	}
	key := fmt.Sprintf("%v", n.key)
	if paint != nil {
		key = paint.Sprint(key)
	}
	fmt.Fprintf(w, "%s: %s = %v\n", path, key, n.val)
	if n.left != nil {
		m.dumpNode(w, n.left, path+"0", paint)
	}
	if n.right != nil {
		m.dumpNode(w, n.right, path+"1", paint)
	}
}

// ConsoleDump behaves like Dump, but highlights keys with ANSI colors when w
// is a terminal. Writers other than terminals receive plain Dump output.
func (m *Map[K, V]) ConsoleDump(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		m.Dump(w)
		return
	}
	if m.IsEmpty() {
		fmt.Fprintln(w, "<empty>")
		return
	}
	m.dumpNode(w, m.root, "", color.New(color.FgCyan, color.Bold))
}

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes). Child links are drawn solid, parent back-links
// dashed.
func (m *Map[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=circle];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		id := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\"];\n", id, n.key)
		for _, child := range []*node[K, V]{n.left, n.right} {
			if child == nil {
				continue
			}
			cid := ids.alloc(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, cid)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", cid, id)
			walk(child)
		}
	}
	walk(m.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
