package valueobject

// The member descriptor types below are owned value records recovered from the
// binding grammar. Each references its owning class by name rather than by
// pointer: class descriptors are keyed by a stable name and never moved, so
// the name is a sufficient logical reference and no back-pointers are needed.

// Constructor describes the class's `new` static function.
type Constructor struct {
	ClassName     string           `json:"class_name"              yaml:"class_name"`
	FunctionName  string           `json:"function_name"           yaml:"function_name"`
	CFunctionName string           `json:"c_function_name"         yaml:"c_function_name"`
	ArgNames      []string         `json:"arg_names"               yaml:"arg_names"`
	ArgTypes      []TypeDescriptor `json:"arg_types"               yaml:"arg_types"`
	Documentation string           `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Destructor describes the class's drop function. It takes no recorded
// arguments and returns nothing.
type Destructor struct {
	ClassName     string `json:"class_name"      yaml:"class_name"`
	FunctionName  string `json:"function_name"   yaml:"function_name"`
	CFunctionName string `json:"c_function_name" yaml:"c_function_name"`
}

// Method describes an instance method. The implicit receiver argument is
// stripped before the argument lists are recorded, so ArgNames and ArgTypes
// describe only the caller-supplied arguments. Consume marks a method whose
// invocation invalidates the receiver.
type Method struct {
	ClassName     string           `json:"class_name"              yaml:"class_name"`
	MethodName    string           `json:"method_name"             yaml:"method_name"`
	FunctionName  string           `json:"function_name"           yaml:"function_name"`
	CFunctionName string           `json:"c_function_name"         yaml:"c_function_name"`
	ReturnType    TypeDescriptor   `json:"return_type"             yaml:"return_type"`
	ArgNames      []string         `json:"arg_names"               yaml:"arg_names"`
	ArgTypes      []TypeDescriptor `json:"arg_types"               yaml:"arg_types"`
	Documentation string           `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Consume       bool             `json:"consume"                 yaml:"consume"`
}

// StaticFunction describes a class-scoped function without a receiver.
// Statics cannot consume an instance, so there is no consume flag.
type StaticFunction struct {
	ClassName     string           `json:"class_name"              yaml:"class_name"`
	MethodName    string           `json:"method_name"             yaml:"method_name"`
	FunctionName  string           `json:"function_name"           yaml:"function_name"`
	CFunctionName string           `json:"c_function_name"         yaml:"c_function_name"`
	ReturnType    TypeDescriptor   `json:"return_type"             yaml:"return_type"`
	ArgNames      []string         `json:"arg_names"               yaml:"arg_names"`
	ArgTypes      []TypeDescriptor `json:"arg_types"               yaml:"arg_types"`
	Documentation string           `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Getter describes a field read accessor. Type is the field's type, read from
// the declaration's return type.
type Getter struct {
	ClassName     string         `json:"class_name"              yaml:"class_name"`
	FieldName     string         `json:"field_name"              yaml:"field_name"`
	FunctionName  string         `json:"function_name"           yaml:"function_name"`
	CFunctionName string         `json:"c_function_name"         yaml:"c_function_name"`
	Type          TypeDescriptor `json:"type"                    yaml:"type"`
	Documentation string         `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Setter describes a field write accessor. Type is the field's type, read from
// the declaration's second argument; the first argument is the receiver.
type Setter struct {
	ClassName     string         `json:"class_name"              yaml:"class_name"`
	FieldName     string         `json:"field_name"              yaml:"field_name"`
	FunctionName  string         `json:"function_name"           yaml:"function_name"`
	CFunctionName string         `json:"c_function_name"         yaml:"c_function_name"`
	Type          TypeDescriptor `json:"type"                    yaml:"type"`
	Documentation string         `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}
