// Package extraction implements the namespace-scoped walk over a parsed
// binding header and the decoding of its identifier grammar into a binding
// model. The walk is a single-threaded depth-first descent; the traversal
// state is owned exclusively by the one walk in progress.
package extraction

import (
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
)

// Namespace markers the generated header is required to nest under, in order:
// the root marker, the internal marker, then exactly one package namespace.
const (
	RootNamespaceMarker     = "finch"
	InternalNamespaceMarker = "bindgen"
)

// NamespaceDecision is the outcome of feeding a namespace node to the
// traversal state machine.
type NamespaceDecision int

const (
	// NamespaceRecurse means the namespace is part of the expected nesting and
	// its children should be visited.
	NamespaceRecurse NamespaceDecision = iota
	// NamespaceSkip means the namespace is irrelevant input encountered before
	// the root marker; it is silently ignored.
	NamespaceSkip
	// NamespaceWarn means the namespace is unexpected inside the root marker;
	// it is reported and its subtree is not visited.
	NamespaceWarn
)

// TraversalState carries the walker's position within the expected namespace
// nesting and the class descriptors accumulated so far. There is exactly one
// instance per run; it is not reentrant and must not be shared across
// concurrent traversals.
type TraversalState struct {
	enteredRoot      bool
	enteredInternal  bool
	packageNamespace string
	classes          map[string]*valueobject.ClassDescriptor
}

// NewTraversalState creates the state for one extraction run.
func NewTraversalState() *TraversalState {
	return &TraversalState{
		classes: make(map[string]*valueobject.ClassDescriptor),
	}
}

// EnterNamespace advances the state machine with a namespace node's name and
// returns what the walker should do with the node. The namespace flags only
// ever move forward: leaving a namespace during the descent does not reset
// them.
func (s *TraversalState) EnterNamespace(name string) NamespaceDecision {
	switch {
	case !s.enteredRoot && name == RootNamespaceMarker:
		s.enteredRoot = true
		return NamespaceRecurse
	case s.enteredRoot && !s.enteredInternal && name == InternalNamespaceMarker:
		s.enteredInternal = true
		return NamespaceRecurse
	case s.enteredRoot && s.enteredInternal && s.packageNamespace == "":
		s.packageNamespace = name
		return NamespaceRecurse
	case s.enteredRoot:
		return NamespaceWarn
	default:
		return NamespaceSkip
	}
}

// InsideInternal reports whether both the root and internal markers have been
// entered. Unexposed wrappers are only recursed through once this holds.
func (s *TraversalState) InsideInternal() bool {
	return s.enteredRoot && s.enteredInternal
}

// Eligible reports whether declarations reached now may be decoded: both
// markers entered and the package namespace recorded.
func (s *TraversalState) Eligible() bool {
	return s.enteredRoot && s.enteredInternal && s.packageNamespace != ""
}

// PackageNamespace returns the recorded package namespace, empty until the
// third expected namespace has been seen.
func (s *TraversalState) PackageNamespace() string {
	return s.packageNamespace
}

// InsertClass registers a class descriptor the first time its name is seen.
// A name seen twice is not overwritten; the existing descriptor is returned
// and created is false.
func (s *TraversalState) InsertClass(name, cName, documentation string) (*valueobject.ClassDescriptor, bool) {
	if existing, ok := s.classes[name]; ok {
		return existing, false
	}

	class := valueobject.NewClassDescriptor(name, cName, documentation)
	s.classes[name] = class
	return class, true
}

// Class looks up a class descriptor by name.
func (s *TraversalState) Class(name string) (*valueobject.ClassDescriptor, bool) {
	class, ok := s.classes[name]
	return class, ok
}

// ClassCount returns the number of classes accumulated so far.
func (s *TraversalState) ClassCount() int {
	return len(s.classes)
}

// Model returns the completed binding model for this run.
func (s *TraversalState) Model() *valueobject.BindingModel {
	return &valueobject.BindingModel{
		PackageNamespace: s.packageNamespace,
		Classes:          s.classes,
	}
}
