package iotransfer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/errcode"
)

// NoTransferToolError is fatal: without a transfer tool no network
// activity can happen at all.
func NoTransferToolError() error {
	msg := `No transfer tool found

gtdbfetch downloads files through an external tool and needs
<em>aria2c</em> (preferred) or <em>wget</em> on the PATH.

<em>How to fix:</em>
  1. Install aria2: <em>apt install aria2</em> / <em>brew install aria2</em>
  2. Or install wget`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoTransferToolError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: %w",
			fn, errors.New("neither aria2c nor wget is installed")),
	}
}

func TransferToolStartError(tool string, err error) error {
	msg := "Cannot run <em>%s</em>"
	vars := []any{tool}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TransferToolStartError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot run %s: %w",
			fn, tool, err),
	}
}
