package cppfrontend

import (
	tree_sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// C++ grammar node types the lowering pass reacts to.
const (
	nodeTranslationUnit   = "translation_unit"
	nodeNamespace         = "namespace_definition"
	nodeLinkageSpec       = "linkage_specification"
	nodeAliasDeclaration  = "alias_declaration"
	nodeTypeDefinition    = "type_definition"
	nodeDeclaration       = "declaration"
	nodeFunctionDef       = "function_definition"
	nodeDeclarationList   = "declaration_list"
	nodeComment           = "comment"
	nodeFunctionDecl      = "function_declarator"
	nodePointerDecl       = "pointer_declarator"
	nodeAbstractPtrDecl   = "abstract_pointer_declarator"
	nodeReferenceDecl     = "reference_declarator"
	nodeParameterList     = "parameter_list"
	nodeParameterDecl     = "parameter_declaration"
	nodeIdentifier        = "identifier"
	nodeTypeIdentifier    = "type_identifier"
	nodeTypeDescriptor    = "type_descriptor"
)

// lowerer turns a tree-sitter C++ syntax tree into the owned declaration tree
// of the front-end contract. It holds the header source for text extraction
// and the alias table used for canonical-type resolution.
type lowerer struct {
	source       []byte
	pointerWidth int64
	aliases      map[string]aliasTarget
}

// aliasTarget records the right-hand side of a typedef or alias declaration
// seen in the translation unit.
type aliasTarget struct {
	baseNodeType string
	baseText     string
	pointers     int
}

func newLowerer(source []byte, pointerWidth int64) *lowerer {
	return &lowerer{
		source:       source,
		pointerWidth: pointerWidth,
		aliases:      make(map[string]aliasTarget),
	}
}

func (l *lowerer) text(node tree_sitter.Node) string {
	return node.Content(l.source)
}

// collectAliases walks the whole tree once and records every typedef and
// alias declaration, so canonical forms can be resolved regardless of where
// in the header a type is referenced.
func (l *lowerer) collectAliases(node tree_sitter.Node) {
	switch node.Type() {
	case nodeAliasDeclaration:
		l.recordAliasDeclaration(node)
	case nodeTypeDefinition:
		l.recordTypeDefinition(node)
	}

	childCount := node.ChildCount()
	for i := range childCount {
		child := node.Child(i)
		if !child.IsNull() {
			l.collectAliases(child)
		}
	}
}

// recordAliasDeclaration records `using NAME = TYPE;`.
func (l *lowerer) recordAliasDeclaration(node tree_sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	typeNode := node.ChildByFieldName("type")
	if nameNode.IsNull() || typeNode.IsNull() {
		return
	}

	// The aliased type arrives as a type_descriptor wrapping the base type
	// and an optional abstract declarator.
	baseNode := typeNode
	pointers := 0
	if typeNode.Type() == nodeTypeDescriptor {
		baseNode = typeNode.ChildByFieldName("type")
		if baseNode.IsNull() {
			return
		}
		pointers = countAbstractPointers(typeNode.ChildByFieldName("declarator"))
	}

	l.aliases[l.text(nameNode)] = aliasTarget{
		baseNodeType: baseNode.Type(),
		baseText:     l.text(baseNode),
		pointers:     pointers,
	}
}

// recordTypeDefinition records `typedef TYPE NAME;`.
func (l *lowerer) recordTypeDefinition(node tree_sitter.Node) {
	typeNode := node.ChildByFieldName("type")
	declaratorNode := node.ChildByFieldName("declarator")
	if typeNode.IsNull() || declaratorNode.IsNull() {
		return
	}

	pointers := 0
	for declaratorNode.Type() == nodePointerDecl {
		pointers++
		inner := declaratorNode.ChildByFieldName("declarator")
		if inner.IsNull() {
			return
		}
		declaratorNode = inner
	}

	if declaratorNode.Type() != nodeTypeIdentifier {
		return
	}

	l.aliases[l.text(declaratorNode)] = aliasTarget{
		baseNodeType: typeNode.Type(),
		baseText:     l.text(typeNode),
		pointers:     pointers,
	}
}

// countAbstractPointers counts pointer and reference levels on an abstract
// declarator chain.
func countAbstractPointers(node tree_sitter.Node) int {
	count := 0
	for !node.IsNull() {
		switch node.Type() {
		case nodeAbstractPtrDecl, nodeReferenceDecl:
			count++
		default:
			return count
		}
		node = node.ChildByFieldName("declarator")
	}
	return count
}

// lowerTranslationUnit lowers the root node into the translation unit
// declaration.
func (l *lowerer) lowerTranslationUnit(root tree_sitter.Node) *outbound.Declaration {
	return &outbound.Declaration{
		Kind:     outbound.DeclarationTranslationUnit,
		Children: l.lowerChildren(root),
	}
}

// lowerChildren lowers a node's named children in order, attaching runs of
// immediately preceding comment siblings as each declaration's documentation.
func (l *lowerer) lowerChildren(node tree_sitter.Node) []*outbound.Declaration {
	declarations := make([]*outbound.Declaration, 0)
	pendingComments := make([]string, 0)

	childCount := node.ChildCount()
	for i := range childCount {
		child := node.Child(i)
		if child.IsNull() || !child.IsNamed() {
			continue
		}

		if child.Type() == nodeComment {
			pendingComments = append(pendingComments, l.text(child))
			continue
		}

		documentation := joinDocComments(pendingComments)
		pendingComments = pendingComments[:0]

		if decl := l.lowerDeclaration(child, documentation); decl != nil {
			declarations = append(declarations, decl)
		}
	}

	return declarations
}

// lowerDeclaration lowers one named node into a declaration entity. Nodes the
// extraction core does not react to become DeclarationOther.
func (l *lowerer) lowerDeclaration(node tree_sitter.Node, documentation string) *outbound.Declaration {
	switch node.Type() {
	case nodeNamespace:
		return l.lowerNamespace(node, documentation)
	case nodeLinkageSpec:
		return l.lowerLinkageSpecification(node)
	case nodeAliasDeclaration:
		return l.lowerAliasDeclaration(node, documentation)
	case nodeTypeDefinition:
		return l.lowerTypeDefinition(node, documentation)
	case nodeDeclaration, nodeFunctionDef:
		return l.lowerFunction(node, documentation)
	default:
		return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
	}
}

func (l *lowerer) lowerNamespace(node tree_sitter.Node, documentation string) *outbound.Declaration {
	name := ""
	if nameNode := node.ChildByFieldName("name"); !nameNode.IsNull() {
		name = l.text(nameNode)
	}

	children := make([]*outbound.Declaration, 0)
	if body := node.ChildByFieldName("body"); !body.IsNull() {
		children = l.lowerChildren(body)
	}

	return &outbound.Declaration{
		Kind:          outbound.DeclarationNamespace,
		Name:          name,
		DisplayName:   name,
		Children:      children,
		Documentation: documentation,
	}
}

// lowerLinkageSpecification lowers an extern "C" block into the unexposed
// wrapper the walker recurses through transparently.
func (l *lowerer) lowerLinkageSpecification(node tree_sitter.Node) *outbound.Declaration {
	children := make([]*outbound.Declaration, 0)

	body := node.ChildByFieldName("body")
	switch {
	case body.IsNull():
	case body.Type() == nodeDeclarationList:
		children = l.lowerChildren(body)
	default:
		// extern "C" applied to a single declaration.
		if decl := l.lowerDeclaration(body, ""); decl != nil {
			children = append(children, decl)
		}
	}

	return &outbound.Declaration{
		Kind:     outbound.DeclarationUnexposed,
		Children: children,
	}
}

func (l *lowerer) lowerAliasDeclaration(node tree_sitter.Node, documentation string) *outbound.Declaration {
	nameNode := node.ChildByFieldName("name")
	if nameNode.IsNull() {
		return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
	}

	name := l.text(nameNode)
	return &outbound.Declaration{
		Kind:          outbound.DeclarationTypeAlias,
		Name:          name,
		DisplayName:   name,
		Documentation: documentation,
	}
}

func (l *lowerer) lowerTypeDefinition(node tree_sitter.Node, documentation string) *outbound.Declaration {
	declaratorNode := node.ChildByFieldName("declarator")
	for !declaratorNode.IsNull() && declaratorNode.Type() == nodePointerDecl {
		declaratorNode = declaratorNode.ChildByFieldName("declarator")
	}
	if declaratorNode.IsNull() || declaratorNode.Type() != nodeTypeIdentifier {
		return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
	}

	name := l.text(declaratorNode)
	return &outbound.Declaration{
		Kind:          outbound.DeclarationTypeAlias,
		Name:          name,
		DisplayName:   name,
		Documentation: documentation,
	}
}

// lowerFunction lowers a declaration that carries a function declarator. A
// declaration without one (a plain variable, a forward struct declaration)
// becomes DeclarationOther.
func (l *lowerer) lowerFunction(node tree_sitter.Node, documentation string) *outbound.Declaration {
	typeNode := node.ChildByFieldName("type")
	declaratorNode := node.ChildByFieldName("declarator")
	if typeNode.IsNull() || declaratorNode.IsNull() {
		return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
	}

	// Pointer levels wrapping the function declarator belong to the result
	// type: `Widget *make(void)` declares a function returning Widget *.
	resultPointers := 0
	for declaratorNode.Type() == nodePointerDecl || declaratorNode.Type() == nodeReferenceDecl {
		resultPointers++
		inner := declaratorNode.ChildByFieldName("declarator")
		if inner.IsNull() {
			return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
		}
		declaratorNode = inner
	}

	if declaratorNode.Type() != nodeFunctionDecl {
		return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
	}

	nameNode := declaratorNode.ChildByFieldName("declarator")
	if nameNode.IsNull() {
		return &outbound.Declaration{Kind: outbound.DeclarationOther, Name: node.Type()}
	}
	name := l.text(nameNode)

	arguments := make([]outbound.Argument, 0)
	if params := declaratorNode.ChildByFieldName("parameters"); !params.IsNull() {
		arguments = l.lowerParameters(params)
	}

	return &outbound.Declaration{
		Kind:          outbound.DeclarationFunction,
		Name:          name,
		DisplayName:   name,
		Arguments:     arguments,
		ResultType:    l.typeHandle(typeNode, resultPointers),
		Documentation: documentation,
	}
}

// lowerParameters lowers a parameter list into the ordered argument list.
func (l *lowerer) lowerParameters(params tree_sitter.Node) []outbound.Argument {
	arguments := make([]outbound.Argument, 0)

	childCount := params.ChildCount()
	for i := range childCount {
		child := params.Child(i)
		if child.IsNull() || child.Type() != nodeParameterDecl {
			continue
		}

		typeNode := child.ChildByFieldName("type")
		if typeNode.IsNull() {
			arguments = append(arguments, outbound.Argument{})
			continue
		}

		name, pointers := parameterDeclarator(child.ChildByFieldName("declarator"), l.source)
		arguments = append(arguments, outbound.Argument{
			Name: name,
			Type: l.typeHandle(typeNode, pointers),
		})
	}

	return arguments
}

// parameterDeclarator walks a parameter's declarator chain, counting pointer
// and reference levels and extracting the parameter name when one is declared.
func parameterDeclarator(node tree_sitter.Node, source []byte) (string, int) {
	pointers := 0
	for !node.IsNull() {
		switch node.Type() {
		case nodePointerDecl, nodeAbstractPtrDecl, nodeReferenceDecl:
			pointers++
			node = node.ChildByFieldName("declarator")
		case nodeIdentifier:
			return node.Content(source), pointers
		default:
			return "", pointers
		}
	}
	return "", pointers
}
