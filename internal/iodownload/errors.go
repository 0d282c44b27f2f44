package iodownload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/errcode"
)

// TaxonNotFoundError is returned when a taxon query matches nothing
// in the release catalog.
func TaxonNotFoundError(query string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	msg := `Taxon <em>%s</em> did not match anything in the catalog.
<em>Possible causes:</em>
- the name is misspelled, or cased differently than the catalog
- the taxon belongs to the other domain dataset (bac120 vs ar53)
- the taxon is absent from this release
<em>How to fix:</em>
- check the spelling, or query with the full lineage path
- switch datasets with the <em>--dataset</em> flag
- try another release with the <em>--release</em> flag`

	return &gn.Error{
		Code: errcode.TaxonNotFoundError,
		Err: fmt.Errorf(
			"from %s: cannot resolve taxon %q: %w",
			fn, query, err,
		),
		Msg:  msg,
		Vars: []any{query},
	}
}

// CancelledError is returned when the run is interrupted.
func CancelledError(err error) error {
	msg := "Download operation was cancelled"

	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("download cancelled: %w", err),
	}
}
