package selection

// Package selection maintains the checkable tree of discovered files. Nodes
// own their children; toggling a directory cascades to everything below it.
// The tree is rebuilt from scratch on every scan and never persisted.

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/imgforge/img-converter/internal/model"
)

// Node is one entry in the selection tree: either a directory grouping or a
// discovered file. Node IDs are slash-separated paths relative to the scan
// root, which makes them stable across rebuilds of the same tree.
type Node struct {
	ID       string
	Name     string
	Path     string // absolute filesystem path
	IsDir    bool
	Checked  bool
	File     model.DiscoveredFile // zero value for directory nodes
	Children []*Node
}

// Tree is the checkable selection tree over one scan result.
type Tree struct {
	root  *Node
	index map[string]*Node
}

// RootID is the node ID of the invisible tree root.
const RootID = ""

// New builds a selection tree from a scan result. Files are grouped under
// directory nodes mirroring their location relative to the scan root; every
// node starts checked, matching the original behavior of selecting all
// discovered files.
func New(root string, files []model.DiscoveredFile) *Tree {
	t := &Tree{
		root:  &Node{ID: RootID, IsDir: true, Checked: true},
		index: map[string]*Node{RootID: nil},
	}
	t.index[RootID] = t.root

	for _, file := range files {
		t.insert(root, file)
	}
	t.sortChildren(t.root)
	return t
}

// insert places one discovered file in the tree, creating intermediate
// directory nodes as needed.
func (t *Tree) insert(root string, file model.DiscoveredFile) {
	rel, err := filepath.Rel(root, file.Path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		// The scan root is the file itself (or outside the root); show
		// the filename rather than a relative "." placeholder.
		rel = filepath.Base(file.Path)
	}
	rel = filepath.ToSlash(rel)

	parent := t.root
	parts := strings.Split(rel, "/")
	for i, part := range parts[:len(parts)-1] {
		dirID := strings.Join(parts[:i+1], "/")
		child, ok := t.index[dirID]
		if !ok {
			child = &Node{
				ID:      dirID,
				Name:    part,
				Path:    filepath.Join(root, filepath.FromSlash(dirID)),
				IsDir:   true,
				Checked: true,
			}
			parent.Children = append(parent.Children, child)
			t.index[dirID] = child
		}
		parent = child
	}

	leaf := &Node{
		ID:      rel,
		Name:    parts[len(parts)-1],
		Path:    file.Path,
		Checked: true,
		File:    file,
	}
	parent.Children = append(parent.Children, leaf)
	t.index[rel] = leaf
}

// sortChildren orders directories before files, each alphabetically.
func (t *Tree) sortChildren(node *Node) {
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			t.sortChildren(child)
		}
	}
}

// Node returns the node with the given ID.
func (t *Tree) Node(id string) (*Node, bool) {
	node, ok := t.index[id]
	return node, ok
}

// ChildIDs returns the IDs of a node's children, for tree widget adapters.
func (t *Tree) ChildIDs(id string) []string {
	node, ok := t.index[id]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		ids = append(ids, child.ID)
	}
	return ids
}

// IsBranch reports whether a node has (or can have) children.
func (t *Tree) IsBranch(id string) bool {
	node, ok := t.index[id]
	return ok && node.IsDir
}

// SetChecked updates a node's inclusion flag. Directory nodes cascade the
// new state to every descendant.
func (t *Tree) SetChecked(id string, checked bool) {
	node, ok := t.index[id]
	if !ok {
		return
	}
	setCheckedRecursive(node, checked)
}

func setCheckedRecursive(node *Node, checked bool) {
	node.Checked = checked
	for _, child := range node.Children {
		setCheckedRecursive(child, checked)
	}
}

// CheckedFiles returns the discovered files whose inclusion flag is set,
// ordered by path.
func (t *Tree) CheckedFiles() []model.DiscoveredFile {
	var files []model.DiscoveredFile
	t.walkFiles(t.root, func(node *Node) {
		if node.Checked {
			files = append(files, node.File)
		}
	})
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// Counts returns the number of checked files and the total number of files.
func (t *Tree) Counts() (checked, total int) {
	t.walkFiles(t.root, func(node *Node) {
		total++
		if node.Checked {
			checked++
		}
	})
	return checked, total
}

func (t *Tree) walkFiles(node *Node, fn func(*Node)) {
	for _, child := range node.Children {
		if child.IsDir {
			t.walkFiles(child, fn)
		} else {
			fn(child)
		}
	}
}
