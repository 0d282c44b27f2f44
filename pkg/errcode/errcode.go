package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Registry errors
	RegistryReadError
	RegistryParseError
	RegistryInvalidError
	UnknownMirrorError
	UnknownReleaseError
	UnknownDatasetError

	// Catalog errors
	CatalogUnavailableError
	CatalogParseError

	// Query resolution errors
	TaxonNotFoundError

	// Content store errors
	ContentStoreError
	BadAccessionError

	// Materializer errors
	LinkCreationError
	ManifestReadError
	ManifestWriteError

	// Transfer errors
	NoTransferToolError
	TransferToolStartError

	// Run control
	CancelledError
)
