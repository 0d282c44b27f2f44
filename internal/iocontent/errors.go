package iocontent

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

// BadAccessionError is returned for catalog rows whose accession or
// assembly name cannot be turned into a genome file name.
func BadAccessionError(accession string, err error) error {
	msg := "Cannot derive genome file for <em>%s</em>"
	vars := []any{accession}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BadAccessionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: bad accession %q: %w",
			fn, accession, err),
	}
}

func ContentStoreError(path string, err error) error {
	msg := "Cannot check genome file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ContentStoreError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot stat genome file: %w",
			fn, err),
	}
}
