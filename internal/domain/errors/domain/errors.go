// Package domain provides domain-specific error definitions and utilities.
package domain

import "errors"

// Structural violations of the header-generation contract. These abort the
// whole extraction run: they indicate the producer emitted members before the
// owning class or a declaration shape that no local recovery can repair.
var (
	ErrClassNotFound   = errors.New("class not found")
	ErrMissingReceiver = errors.New("method declaration is missing its receiver argument")
	ErrUnresolvedType  = errors.New("front end could not resolve type")
)

// General extraction errors.
var (
	ErrNoTranslationUnit = errors.New("front end produced no translation unit")
	ErrPackageNameEmpty  = errors.New("package name is empty")
)
