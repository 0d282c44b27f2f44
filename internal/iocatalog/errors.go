package iocatalog

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

// CatalogUnavailableError is returned when the catalog can be neither
// found locally nor fetched from the configured mirror.
func CatalogUnavailableError(url string, err error) error {
	msg := `Cannot fetch catalog from <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - The mirror is down or refusing connections
  - Wrong mirror, release or dataset name

<em>How to fix:</em>
  1. Check the URL in a browser
  2. Try another mirror with <em>--mirror</em>`

	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogUnavailableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: catalog download failed: %w",
			fn, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func CatalogParseError(path string, err error) error {
	msg := "Cannot parse catalog <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse catalog: %w",
			fn, err),
	}
}
