package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/imgforge/img-converter/internal/model"
	"github.com/imgforge/img-converter/internal/selection"
)

// File size formatting thresholds
const (
	sizeKB = 1 << 10
	sizeMB = 1 << 20
)

// FileTree renders scan results as a checkable tree. Toggling a directory
// node cascades to everything below it; the onToggle callback fires after
// every change so the owner can refresh selection counters.
type FileTree struct {
	tree     *widget.Tree
	mu       sync.RWMutex
	nodes    *selection.Tree
	onToggle func()
}

// NewFileTree creates an empty file tree widget.
func NewFileTree(onToggle func()) *FileTree {
	ft := &FileTree{onToggle: onToggle}

	ft.tree = widget.NewTree(
		ft.childIDs,
		ft.isBranch,
		func(branch bool) fyne.CanvasObject {
			return widget.NewCheck("", nil)
		},
		ft.updateNode,
	)

	return ft
}

// Widget returns the renderable tree widget.
func (ft *FileTree) Widget() fyne.CanvasObject {
	return ft.tree
}

// SetNodes replaces the displayed tree with a fresh scan result.
func (ft *FileTree) SetNodes(nodes *selection.Tree) {
	ft.mu.Lock()
	ft.nodes = nodes
	ft.mu.Unlock()

	ft.tree.Refresh()
	ft.tree.OpenAllBranches()

	if ft.onToggle != nil {
		ft.onToggle()
	}
}

// Clear removes all nodes from the tree.
func (ft *FileTree) Clear() {
	ft.SetNodes(nil)
}

// CheckedFiles returns the currently selected files in path order.
func (ft *FileTree) CheckedFiles() []model.DiscoveredFile {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.nodes == nil {
		return nil
	}
	return ft.nodes.CheckedFiles()
}

// Counts returns how many files are checked out of the total shown.
func (ft *FileTree) Counts() (checked, total int) {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.nodes == nil {
		return 0, 0
	}
	return ft.nodes.Counts()
}

// SetAllChecked checks or unchecks every file at once.
func (ft *FileTree) SetAllChecked(checked bool) {
	ft.mu.RLock()
	nodes := ft.nodes
	ft.mu.RUnlock()

	if nodes == nil {
		return
	}

	nodes.SetChecked(selection.RootID, checked)
	ft.tree.Refresh()

	if ft.onToggle != nil {
		ft.onToggle()
	}
}

func (ft *FileTree) childIDs(id widget.TreeNodeID) []widget.TreeNodeID {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.nodes == nil {
		return nil
	}
	return ft.nodes.ChildIDs(id)
}

func (ft *FileTree) isBranch(id widget.TreeNodeID) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.nodes == nil {
		return id == selection.RootID
	}
	return ft.nodes.IsBranch(id)
}

func (ft *FileTree) updateNode(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	ft.mu.RLock()
	nodes := ft.nodes
	ft.mu.RUnlock()

	if nodes == nil {
		return
	}

	node, ok := nodes.Node(id)
	if !ok {
		return
	}

	check, ok := obj.(*widget.Check)
	if !ok {
		return
	}

	// Detach the handler while syncing state so SetChecked does not fire it.
	check.OnChanged = nil
	check.Text = nodeLabel(node)
	check.SetChecked(node.Checked)
	check.OnChanged = func(checked bool) {
		ft.setChecked(id, checked)
	}
	check.Refresh()
}

func (ft *FileTree) setChecked(id string, checked bool) {
	ft.mu.RLock()
	nodes := ft.nodes
	ft.mu.RUnlock()

	if nodes == nil {
		return
	}

	nodes.SetChecked(id, checked)
	ft.tree.Refresh()

	if ft.onToggle != nil {
		ft.onToggle()
	}
}

// nodeLabel builds the display text for a tree node.
func nodeLabel(node *selection.Node) string {
	if node.IsDir {
		return IconFolder + " " + node.Name
	}
	return IconFile + " " + node.Name + MiddleDotSeparator + formatFileSize(node.File.Size)
}

// formatFileSize renders a byte count in a short human-readable form.
func formatFileSize(size int64) string {
	switch {
	case size >= sizeMB:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(sizeMB))
	case size >= sizeKB:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(sizeKB))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
