package outbound

import "context"

// HeaderFrontEnd parses a generated binding header into a declaration tree.
// The extraction core treats the front end as a black box: it consumes only
// the returned Declaration tree and the TypeHandles hanging off it.
type HeaderFrontEnd interface {
	// ParseHeader parses the header file at path and returns the translation
	// unit root declaration.
	ParseHeader(ctx context.Context, path string) (*Declaration, error)

	// ParseHeaderSource parses in-memory header source. The name is used for
	// diagnostics only.
	ParseHeaderSource(ctx context.Context, name string, source []byte) (*Declaration, error)
}
