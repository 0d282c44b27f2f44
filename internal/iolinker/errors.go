package iolinker

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/errcode"
)

// LinkCreationError is reported per accession; the run continues with
// the remaining accessions.
func LinkCreationError(accession, path string, err error) error {
	msg := "Cannot link <em>%s</em> at <em>%s</em>"
	vars := []any{accession, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LinkCreationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create link for %s: %w",
			fn, accession, err),
	}
}

func ManifestReadError(path string, err error) error {
	msg := `Cannot read link manifest <em>%s</em>

The manifest records which taxonomy links earlier runs created.

<em>How to fix:</em>
  1. Delete the file and run again; stale links from earlier runs
     will no longer be repaired automatically`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ManifestReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read manifest: %w",
			fn, err),
	}
}

func ManifestWriteError(path string, err error) error {
	msg := "Cannot write link manifest <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ManifestWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write manifest: %w",
			fn, err),
	}
}
