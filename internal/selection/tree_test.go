package selection

import (
	"path/filepath"
	"testing"

	"github.com/imgforge/img-converter/internal/model"
)

func buildTestTree() *Tree {
	root := filepath.Join("/data", "pics")
	files := []model.DiscoveredFile{
		{Path: filepath.Join(root, "a.png"), Format: model.FormatPNG},
		{Path: filepath.Join(root, "b.jpg"), Format: model.FormatJPG},
		{Path: filepath.Join(root, "sub", "c.webp"), Format: model.FormatWEBP},
		{Path: filepath.Join(root, "sub", "d.tiff"), Format: model.FormatTIFF},
	}
	return New(root, files)
}

func TestNew_GroupsByDirectory(t *testing.T) {
	tree := buildTestTree()

	rootChildren := tree.ChildIDs(RootID)
	if len(rootChildren) != 3 {
		t.Fatalf("Expected 3 root children (sub, a.png, b.jpg), got %d: %v",
			len(rootChildren), rootChildren)
	}

	// Directories sort before files.
	if rootChildren[0] != "sub" {
		t.Errorf("Expected 'sub' first, got %s", rootChildren[0])
	}
	if !tree.IsBranch("sub") {
		t.Error("'sub' should be a branch")
	}
	if tree.IsBranch("a.png") {
		t.Error("'a.png' should not be a branch")
	}

	subChildren := tree.ChildIDs("sub")
	if len(subChildren) != 2 {
		t.Fatalf("Expected 2 children under sub, got %d", len(subChildren))
	}
}

func TestTree_AllCheckedInitially(t *testing.T) {
	tree := buildTestTree()

	checked, total := tree.Counts()
	if checked != 4 || total != 4 {
		t.Errorf("Expected 4/4 checked initially, got %d/%d", checked, total)
	}
}

func TestTree_ToggleFile(t *testing.T) {
	tree := buildTestTree()

	tree.SetChecked("a.png", false)

	checked, total := tree.Counts()
	if checked != 3 || total != 4 {
		t.Errorf("Expected 3/4 after unchecking one file, got %d/%d", checked, total)
	}

	files := tree.CheckedFiles()
	for _, file := range files {
		if filepath.Base(file.Path) == "a.png" {
			t.Error("Unchecked file must not appear in CheckedFiles")
		}
	}

	tree.SetChecked("a.png", true)
	checked, _ = tree.Counts()
	if checked != 4 {
		t.Errorf("Expected 4 checked after re-checking, got %d", checked)
	}
}

func TestTree_DirectoryToggleCascades(t *testing.T) {
	tree := buildTestTree()

	tree.SetChecked("sub", false)

	checked, total := tree.Counts()
	if checked != 2 || total != 4 {
		t.Errorf("Expected 2/4 after unchecking directory, got %d/%d", checked, total)
	}

	node, ok := tree.Node("sub/c.webp")
	if !ok {
		t.Fatal("Expected node sub/c.webp to exist")
	}
	if node.Checked {
		t.Error("Child of unchecked directory should be unchecked")
	}

	tree.SetChecked("sub", true)
	checked, _ = tree.Counts()
	if checked != 4 {
		t.Errorf("Expected 4 checked after re-checking directory, got %d", checked)
	}
}

func TestTree_CheckedFilesOrdered(t *testing.T) {
	tree := buildTestTree()

	files := tree.CheckedFiles()
	if len(files) != 4 {
		t.Fatalf("Expected 4 checked files, got %d", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i-1].Path >= files[i].Path {
			t.Errorf("CheckedFiles not sorted: %s before %s", files[i-1].Path, files[i].Path)
		}
	}
}

func TestTree_UnknownNode(t *testing.T) {
	tree := buildTestTree()

	if _, ok := tree.Node("missing"); ok {
		t.Error("Expected lookup of unknown node to fail")
	}

	// Toggling an unknown node is a no-op, not a panic.
	tree.SetChecked("missing", false)

	checked, _ := tree.Counts()
	if checked != 4 {
		t.Errorf("Toggling unknown node changed state: %d checked", checked)
	}
}

func TestNew_SingleFileRoot(t *testing.T) {
	// A scan rooted at a file produces that file as its only entry, with
	// the root equal to the file's own path.
	tree := New("/photos/photo.png", []model.DiscoveredFile{
		{Path: "/photos/photo.png", Format: model.FormatPNG, Size: 10},
	})

	ids := tree.ChildIDs(RootID)
	if len(ids) != 1 {
		t.Fatalf("Expected 1 root child, got %d", len(ids))
	}
	if ids[0] != "photo.png" {
		t.Errorf("Expected node ID %q, got %q", "photo.png", ids[0])
	}

	node, ok := tree.Node(ids[0])
	if !ok {
		t.Fatal("Node lookup failed for single-file root")
	}
	if node.Name != "photo.png" {
		t.Errorf("Expected node name %q, got %q", "photo.png", node.Name)
	}
	if node.IsDir {
		t.Error("Single-file node should not be a directory")
	}

	checked, total := tree.Counts()
	if checked != 1 || total != 1 {
		t.Errorf("Expected 1/1 files, got %d/%d", checked, total)
	}
}
