package extraction

import (
	"fmt"

	domainerrors "github.com/finch-gen/finch-frontend-api/internal/domain/errors/domain"
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// The builders below are pure transformations from a declaration entity (plus
// the already-known class name and decoded member name) into owned member
// records. They fail only on structural violations of the producer contract:
// unresolved types and missing mandatory arguments.

// buildArguments converts a declaration's argument list into parallel name and
// type slices.
func buildArguments(args []outbound.Argument) ([]string, []valueobject.TypeDescriptor, error) {
	names := make([]string, 0, len(args))
	types := make([]valueobject.TypeDescriptor, 0, len(args))

	for _, arg := range args {
		if arg.Type == nil {
			return nil, nil, fmt.Errorf("argument %q: %w", arg.Name, domainerrors.ErrUnresolvedType)
		}
		names = append(names, arg.Name)
		types = append(types, BuildTypeDescriptor(arg.Type))
	}

	return names, types, nil
}

// newConstructor builds the constructor record from the `static new`
// declaration. All declared arguments are recorded; there is no receiver.
func newConstructor(
	className, fnName, cFnName string,
	decl *outbound.Declaration,
) (valueobject.Constructor, error) {
	argNames, argTypes, err := buildArguments(decl.Arguments)
	if err != nil {
		return valueobject.Constructor{}, fmt.Errorf("constructor of class %q: %w", className, err)
	}

	return valueobject.Constructor{
		ClassName:     className,
		FunctionName:  fnName,
		CFunctionName: cFnName,
		ArgNames:      argNames,
		ArgTypes:      argTypes,
		Documentation: decl.Documentation,
	}, nil
}

// newDestructor builds the destructor record. Destructors carry no arguments
// and no return type.
func newDestructor(className, fnName, cFnName string) valueobject.Destructor {
	return valueobject.Destructor{
		ClassName:     className,
		FunctionName:  fnName,
		CFunctionName: cFnName,
	}
}

// newMethod builds a method record, stripping exactly one leading argument as
// the implicit receiver. A method declaration without any argument violates
// the producer contract, because the receiver is mandatory by construction.
func newMethod(
	className, methodName, fnName, cFnName string,
	consume bool,
	decl *outbound.Declaration,
) (valueobject.Method, error) {
	if len(decl.Arguments) == 0 {
		return valueobject.Method{}, fmt.Errorf(
			"method %q of class %q: %w", methodName, className, domainerrors.ErrMissingReceiver)
	}

	argNames, argTypes, err := buildArguments(decl.Arguments[1:])
	if err != nil {
		return valueobject.Method{}, fmt.Errorf("method %q of class %q: %w", methodName, className, err)
	}

	if decl.ResultType == nil {
		return valueobject.Method{}, fmt.Errorf(
			"method %q of class %q: result: %w", methodName, className, domainerrors.ErrUnresolvedType)
	}

	return valueobject.Method{
		ClassName:     className,
		MethodName:    methodName,
		FunctionName:  fnName,
		CFunctionName: cFnName,
		ReturnType:    BuildTypeDescriptor(decl.ResultType),
		ArgNames:      argNames,
		ArgTypes:      argTypes,
		Documentation: decl.Documentation,
		Consume:       consume,
	}, nil
}

// newStaticFunction builds a static-function record. Statics have no receiver
// to strip and cannot consume an instance.
func newStaticFunction(
	className, methodName, fnName, cFnName string,
	decl *outbound.Declaration,
) (valueobject.StaticFunction, error) {
	argNames, argTypes, err := buildArguments(decl.Arguments)
	if err != nil {
		return valueobject.StaticFunction{}, fmt.Errorf(
			"static %q of class %q: %w", methodName, className, err)
	}

	if decl.ResultType == nil {
		return valueobject.StaticFunction{}, fmt.Errorf(
			"static %q of class %q: result: %w", methodName, className, domainerrors.ErrUnresolvedType)
	}

	return valueobject.StaticFunction{
		ClassName:     className,
		MethodName:    methodName,
		FunctionName:  fnName,
		CFunctionName: cFnName,
		ReturnType:    BuildTypeDescriptor(decl.ResultType),
		ArgNames:      argNames,
		ArgTypes:      argTypes,
		Documentation: decl.Documentation,
	}, nil
}

// newGetter builds a getter record; the field's type is read from the
// declaration's return type.
func newGetter(
	className, fieldName, fnName, cFnName string,
	decl *outbound.Declaration,
) (valueobject.Getter, error) {
	if decl.ResultType == nil {
		return valueobject.Getter{}, fmt.Errorf(
			"getter %q of class %q: result: %w", fieldName, className, domainerrors.ErrUnresolvedType)
	}

	return valueobject.Getter{
		ClassName:     className,
		FieldName:     fieldName,
		FunctionName:  fnName,
		CFunctionName: cFnName,
		Type:          BuildTypeDescriptor(decl.ResultType),
		Documentation: decl.Documentation,
	}, nil
}

// newSetter builds a setter record; the field's type is read from the
// declaration's second argument, the first being the receiver. Both are
// mandatory by construction of the producer.
func newSetter(
	className, fieldName, fnName, cFnName string,
	decl *outbound.Declaration,
) (valueobject.Setter, error) {
	if len(decl.Arguments) < 2 {
		return valueobject.Setter{}, fmt.Errorf(
			"setter %q of class %q has %d arguments, want receiver and value: %w",
			fieldName, className, len(decl.Arguments), domainerrors.ErrMissingReceiver)
	}

	value := decl.Arguments[1]
	if value.Type == nil {
		return valueobject.Setter{}, fmt.Errorf(
			"setter %q of class %q: value argument %q: %w",
			fieldName, className, value.Name, domainerrors.ErrUnresolvedType)
	}

	return valueobject.Setter{
		ClassName:     className,
		FieldName:     fieldName,
		FunctionName:  fnName,
		CFunctionName: cFnName,
		Type:          BuildTypeDescriptor(value.Type),
		Documentation: decl.Documentation,
	}, nil
}
