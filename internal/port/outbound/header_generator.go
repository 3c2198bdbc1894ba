package outbound

import "context"

// HeaderGenerationSpec describes one invocation of the external header
// generator.
type HeaderGenerationSpec struct {
	// PackageName is the native package the bindings belong to. Hyphens are
	// mapped to underscores for the namespace segment and the header name.
	PackageName string
	// CrateDir is the directory of the native library's source tree.
	CrateDir string
	// OutputDir is where the generated header is written. Empty means the
	// crate directory.
	OutputDir string
}

// HeaderGenerator drives the external generation step that turns the native
// library's annotated source into a C-linkage binding header. Generation
// itself happens outside this system; the adapter only builds and runs the
// invocation.
type HeaderGenerator interface {
	// GenerateHeader runs the generator and returns the path of the produced
	// header file.
	GenerateHeader(ctx context.Context, spec HeaderGenerationSpec) (string, error)
}
