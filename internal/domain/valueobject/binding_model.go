package valueobject

import "sort"

// BindingModel is the completed mapping from class name to class descriptor
// produced by one extraction run. The map is unordered by key; each descriptor
// is fully populated when the model is returned.
type BindingModel struct {
	// PackageNamespace is the single namespace segment identifying which
	// native library's bindings were decoded.
	PackageNamespace string `json:"package_namespace" yaml:"package_namespace"`
	// Classes maps each recovered class name to its descriptor.
	Classes map[string]*ClassDescriptor `json:"classes"           yaml:"classes"`
}

// Class returns the descriptor for a class name.
func (m *BindingModel) Class(name string) (*ClassDescriptor, bool) {
	class, ok := m.Classes[name]
	return class, ok
}

// ClassNames returns the class names in lexical order. The underlying map has
// no ordering guarantee; sorting here keeps serialized output and diagnostics
// stable.
func (m *BindingModel) ClassNames() []string {
	names := make([]string, 0, len(m.Classes))
	for name := range m.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
