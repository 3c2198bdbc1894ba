package extraction

import (
	"context"
	"fmt"

	"github.com/finch-gen/finch-frontend-api/internal/application/common/slogger"
	domainerrors "github.com/finch-gen/finch-frontend-api/internal/domain/errors/domain"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// Warning reasons attached to the decode-warning metric.
const (
	warnUnexpectedNamespace = "unexpected_namespace"
	warnUnknownIdentifier   = "unknown_identifier"
	warnMalformedIdentifier = "malformed_identifier"
	warnNamespaceMismatch   = "namespace_mismatch"
	warnUnknownCategory     = "unknown_category"
	warnUnknownMemberKind   = "unknown_member_kind"
)

// Walker recursively visits the declaration tree, advancing the traversal
// state machine on namespace nodes and decoding the identifier grammar on
// type-alias and function declarations.
//
// Unrecognized input is reported as a warning and skipped; only the
// structural violations listed in the domain error package abort the walk, in
// which case no partial model is returned.
type Walker struct {
	state   *TraversalState
	metrics *extractionMetrics
}

// NewWalker creates a walker bound to the given traversal state.
func NewWalker(state *TraversalState) *Walker {
	return &Walker{state: state}
}

// withMetrics attaches extraction metrics; used by the service.
func (w *Walker) withMetrics(metrics *extractionMetrics) *Walker {
	w.metrics = metrics
	return w
}

// Walk runs the depth-first descent from the translation unit root.
func (w *Walker) Walk(ctx context.Context, root *outbound.Declaration) error {
	if root == nil {
		return domainerrors.ErrNoTranslationUnit
	}
	return w.processEntity(ctx, root)
}

// processChildren visits a declaration's children in order.
func (w *Walker) processChildren(ctx context.Context, decl *outbound.Declaration) error {
	for _, child := range decl.Children {
		if err := w.processEntity(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

// processEntity dispatches on the declaration kind. Kinds the core does not
// inspect are ignored without comment.
func (w *Walker) processEntity(ctx context.Context, decl *outbound.Declaration) error {
	switch decl.Kind {
	case outbound.DeclarationTranslationUnit:
		return w.processChildren(ctx, decl)
	case outbound.DeclarationNamespace:
		return w.processNamespace(ctx, decl)
	case outbound.DeclarationUnexposed:
		// Structural wrapper around extern "C" blocks; recursed through
		// transparently once inside the internal namespace.
		if w.state.InsideInternal() {
			return w.processChildren(ctx, decl)
		}
		return nil
	case outbound.DeclarationTypeAlias:
		w.processTypeAlias(ctx, decl)
		return nil
	case outbound.DeclarationFunction:
		return w.processFunction(ctx, decl)
	default:
		return nil
	}
}

// processNamespace feeds the namespace to the state machine and acts on its
// decision.
func (w *Walker) processNamespace(ctx context.Context, decl *outbound.Declaration) error {
	switch w.state.EnterNamespace(decl.Name) {
	case NamespaceRecurse:
		return w.processChildren(ctx, decl)
	case NamespaceWarn:
		slogger.Warn(ctx, "unknown namespace found", slogger.Fields{
			"namespace": decl.Name,
		})
		w.metrics.recordWarning(ctx, warnUnexpectedNamespace)
		return nil
	case NamespaceSkip:
		fallthrough
	default:
		return nil
	}
}

// decodeEligibleIdentifier applies the decode steps shared by type aliases and
// functions: prefix check, field-count guard up to the given position, package
// match and the `class` category check. It returns the split fields, or false
// after reporting the appropriate warning.
func (w *Walker) decodeEligibleIdentifier(
	ctx context.Context,
	identifier string,
	lastField int,
) ([]string, bool) {
	fields, ok := splitIdentifierFields(identifier)
	if !ok {
		slogger.Warn(ctx, "unknown identifier found", slogger.Fields{
			"identifier": identifier,
		})
		w.metrics.recordWarning(ctx, warnUnknownIdentifier)
		return nil, false
	}

	if !hasField(fields, lastField) {
		slogger.Warn(ctx, "malformed identifier found", slogger.Fields{
			"identifier":  identifier,
			"field_count": len(fields),
			"want_fields": lastField + 1,
		})
		w.metrics.recordWarning(ctx, warnMalformedIdentifier)
		return nil, false
	}

	if fields[fieldPackage] != w.state.PackageNamespace() {
		slogger.Warn(ctx, "namespace mismatch", slogger.Fields{
			"identifier": identifier,
			"expected":   w.state.PackageNamespace(),
			"actual":     fields[fieldPackage],
		})
		w.metrics.recordWarning(ctx, warnNamespaceMismatch)
		return nil, false
	}

	if fields[fieldCategory] != categoryClass {
		// Reserved for future non-class-scoped symbols.
		slogger.Warn(ctx, "unknown identifier category found", slogger.Fields{
			"identifier": identifier,
			"category":   fields[fieldCategory],
		})
		w.metrics.recordWarning(ctx, warnUnknownCategory)
		return nil, false
	}

	return fields, true
}

// processTypeAlias registers the opaque class handle the alias introduces.
// Registration is idempotent: a class name seen twice keeps its original
// identity fields.
func (w *Walker) processTypeAlias(ctx context.Context, decl *outbound.Declaration) {
	if !w.state.Eligible() {
		return
	}

	fields, ok := w.decodeEligibleIdentifier(ctx, decl.Name, fieldClassName)
	if !ok {
		return
	}

	className := fields[fieldClassName]
	cName := fmt.Sprintf("finch::bindgen::%s::%s", w.state.PackageNamespace(), decl.DisplayName)

	if _, created := w.state.InsertClass(className, cName, decl.Documentation); created {
		w.metrics.recordClass(ctx)
		slogger.Debug(ctx, "registered class handle", slogger.Fields{
			"class":  className,
			"c_name": cName,
		})
	}
}

// processFunction decodes a class-scoped function declaration and attaches the
// resulting member descriptor to its class. The class must already be present
// in the table: the producer emits the opaque handle alias before any member,
// so a lookup failure is a structural violation that aborts the run.
func (w *Walker) processFunction(ctx context.Context, decl *outbound.Declaration) error {
	if !w.state.Eligible() {
		return nil
	}

	cFnName := decl.Name
	fields, ok := w.decodeEligibleIdentifier(ctx, cFnName, fieldMemberKind)
	if !ok {
		return nil
	}

	className := fields[fieldClassName]
	class, found := w.state.Class(className)
	if !found {
		return fmt.Errorf("failed to find class %q: %w", className, domainerrors.ErrClassNotFound)
	}

	fnName := fmt.Sprintf("finch::bindgen::%s::%s", w.state.PackageNamespace(), cFnName)
	kind := memberCategory(fields[fieldMemberKind])

	switch kind {
	case memberDrop:
		class.SetDestructor(newDestructor(className, fnName, cFnName))

	case memberMethod, memberMethodConsume:
		if !w.requireMemberName(ctx, fields, cFnName) {
			return nil
		}
		method, err := newMethod(className, fields[fieldMemberName], fnName, cFnName, kind == memberMethodConsume, decl)
		if err != nil {
			return err
		}
		class.AddMethod(method)

	case memberStatic:
		if !w.requireMemberName(ctx, fields, cFnName) {
			return nil
		}
		if fields[fieldMemberName] == constructorName {
			ctor, err := newConstructor(className, fnName, cFnName, decl)
			if err != nil {
				return err
			}
			class.SetConstructor(ctor)
			break
		}
		static, err := newStaticFunction(className, fields[fieldMemberName], fnName, cFnName, decl)
		if err != nil {
			return err
		}
		class.AddStatic(static)

	case memberGetter:
		if !w.requireMemberName(ctx, fields, cFnName) {
			return nil
		}
		getter, err := newGetter(className, fields[fieldMemberName], fnName, cFnName, decl)
		if err != nil {
			return err
		}
		class.AddGetter(getter)

	case memberSetter:
		if !w.requireMemberName(ctx, fields, cFnName) {
			return nil
		}
		setter, err := newSetter(className, fields[fieldMemberName], fnName, cFnName, decl)
		if err != nil {
			return err
		}
		class.AddSetter(setter)

	default:
		slogger.Warn(ctx, "unknown member category found", slogger.Fields{
			"identifier": cFnName,
			"member":     string(kind),
		})
		w.metrics.recordWarning(ctx, warnUnknownMemberKind)
		return nil
	}

	w.metrics.recordMember(ctx, string(kind))
	return nil
}

// requireMemberName guards the member-name field the dispatched category
// needs before it is indexed, reporting short splits as malformed identifiers
// instead of faulting.
func (w *Walker) requireMemberName(ctx context.Context, fields []string, identifier string) bool {
	if hasField(fields, fieldMemberName) {
		return true
	}

	slogger.Warn(ctx, "malformed identifier found", slogger.Fields{
		"identifier":  identifier,
		"field_count": len(fields),
		"want_fields": fieldMemberName + 1,
	})
	w.metrics.recordWarning(ctx, warnMalformedIdentifier)
	return false
}
