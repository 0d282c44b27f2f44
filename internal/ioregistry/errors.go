package ioregistry

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/errcode"
)

func RegistryReadError(path string, err error) error {
	msg := "Cannot read mirror registry <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegistryReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read registry file: %w",
			fn, err),
	}
}

func RegistryParseError(path string, err error) error {
	msg := "Cannot parse mirror registry <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegistryParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse registry file: %w",
			fn, err),
	}
}

// RegistryInvalidError is returned when mirrors.yaml parses but fails
// validation, e.g. a mirror URL is relative or a catalog pattern has
// no version placeholder.
func RegistryInvalidError(path string, err error) error {
	msg := `Mirror registry is invalid

<em>Registry file:</em> %s

<em>Problem:</em> %v

<em>How to fix:</em>
  1. Edit the file and correct the reported fields
  2. Or delete it and run <em>gtdbfetch</em> again to restore defaults`

	vars := []any{path, err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegistryInvalidError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: registry validation failed: %w",
			fn, err),
	}
}

func UnknownMirrorError(name string, available []string) error {
	msg := "Unknown mirror <em>%s</em>, known mirrors: <em>%s</em>"
	vars := []any{name, strings.Join(available, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownMirrorError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown mirror %q", fn, name),
	}
}

func UnknownReleaseError(version string, available []string) error {
	msg := "Unknown release <em>%s</em>, known releases: <em>%s</em>"
	vars := []any{version, strings.Join(available, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownReleaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown release %q", fn, version),
	}
}

func UnknownDatasetError(name string, available []string) error {
	msg := "Unknown dataset <em>%s</em>, known datasets: <em>%s</em>"
	vars := []any{name, strings.Join(available, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownDatasetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown dataset %q", fn, name),
	}
}
