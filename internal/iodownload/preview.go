package iodownload

import (
	"fmt"
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/download"
)

// previewCap limits how many link paths the dry-run tree shows; a
// genus can match tens of thousands of assemblies.
const previewCap = 20

// preview renders the dry-run report: what the query matched, what a
// real run would fetch, and where the links would go. Nothing is
// downloaded or touched on disk.
func (d *iodownload) preview(plan []planned, rep *download.Report) {
	toFetch := 0
	for i := range plan {
		if !plan[i].entry.Present {
			toFetch++
		}
	}

	tree := newFileTree(d.mat.Root())
	for i := range plan {
		if i == previewCap {
			tree.insert(".", fmt.Sprintf("... and %s more",
				humanize.Comma(int64(len(plan)-previewCap))))
			break
		}
		p := &plan[i]
		rel, err := filepath.Rel(
			d.mat.Root(), d.mat.LinkPath(p.lin, p.entry.Filename),
		)
		if err != nil {
			continue
		}
		label := filepath.Base(rel)
		if p.entry.Present {
			label += " (present)"
		}
		tree.insert(filepath.Dir(rel), label)
	}
	fmt.Print(tree.render())

	gn.Info(`Dry run, nothing was downloaded or linked.
Assemblies matched: %s, already present %s, to fetch %s.
`,
		humanize.Comma(int64(rep.Resolved)),
		humanize.Comma(int64(rep.Present)),
		humanize.Comma(int64(toFetch)),
	)
}

// fileTree renders link paths as an indented tree, reusing directory
// nodes so siblings group under one parent.
type fileTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

func newFileTree(rootLabel string) fileTree {
	return fileTree{
		tree: gotree.New(rootLabel),
		dirs: make(map[string]gotree.Tree),
	}
}

func (t fileTree) dir(path string) gotree.Tree {
	if path == "." {
		return t.tree
	}
	dir := t.dirs[path]
	if dir == nil {
		parent := t.dir(filepath.Dir(path))
		dir = parent.Add(filepath.Base(path))
		t.dirs[path] = dir
	}
	return dir
}

func (t fileTree) insert(dirPath, label string) {
	t.dir(dirPath).Add(label)
}

func (t fileTree) render() string {
	return t.tree.Print()
}
