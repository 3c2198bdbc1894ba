// Package cppfrontend parses generated binding headers with tree-sitter and
// lowers the concrete syntax tree into the declaration-tree contract the
// extraction core consumes. The core never sees tree-sitter nodes; everything
// returned from this package is owned data.
package cppfrontend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexaandru/go-sitter-forest/cpp"
	tree_sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/finch-gen/finch-frontend-api/internal/application/common/slogger"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// DefaultPointerWidth is the byte width assumed for pointers when the target
// is not configured. All supported targets are LP64.
const DefaultPointerWidth = 8

// Config holds front-end configuration.
type Config struct {
	// PointerWidth is the target pointer width in bytes; zero selects
	// DefaultPointerWidth.
	PointerWidth int64
}

// Parser implements outbound.HeaderFrontEnd on top of the tree-sitter C++
// grammar.
type Parser struct {
	parser       *tree_sitter.Parser
	lang         *tree_sitter.Language
	pointerWidth int64
}

// NewParser creates a C++ header parser.
func NewParser(config Config) (*Parser, error) {
	parser := tree_sitter.NewParser()
	cppLang := tree_sitter.NewLanguage(cpp.GetLanguage())

	if !parser.SetLanguage(cppLang) {
		return nil, errors.New("failed to set C++ language in tree-sitter parser")
	}

	pointerWidth := config.PointerWidth
	if pointerWidth == 0 {
		pointerWidth = DefaultPointerWidth
	}

	return &Parser{
		parser:       parser,
		lang:         cppLang,
		pointerWidth: pointerWidth,
	}, nil
}

// ParseHeader parses the header file at path and returns the translation unit
// root declaration.
func (p *Parser) ParseHeader(ctx context.Context, path string) (*outbound.Declaration, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header %q: %w", path, err)
	}

	return p.ParseHeaderSource(ctx, path, source)
}

// ParseHeaderSource parses in-memory header source. The name is used for
// diagnostics only.
func (p *Parser) ParseHeaderSource(
	ctx context.Context,
	name string,
	source []byte,
) (*outbound.Declaration, error) {
	startTime := time.Now()

	tree, err := p.parser.ParseString(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parsing failed: %w", err)
	}
	defer tree.Close()

	lowerer := newLowerer(source, p.pointerWidth)
	lowerer.collectAliases(tree.RootNode())
	root := lowerer.lowerTranslationUnit(tree.RootNode())

	slogger.Debug(ctx, "header parsed", slogger.Fields{
		"header":         name,
		"source_length":  len(source),
		"declarations":   countDeclarations(root),
		"parse_duration": time.Since(startTime).String(),
	})

	return root, nil
}

// countDeclarations counts the declarations in a lowered tree.
func countDeclarations(decl *outbound.Declaration) int {
	if decl == nil {
		return 0
	}

	count := 1
	for _, child := range decl.Children {
		count += countDeclarations(child)
	}

	return count
}
