package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/finch-gen/finch-frontend-api/internal/domain/errors/domain"
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

func intHandle() *outbound.TypeHandle {
	return &outbound.TypeHandle{DisplayName: "int", Kind: valueobject.TypeKindInt, ByteSize: 4}
}

func voidHandle() *outbound.TypeHandle {
	return &outbound.TypeHandle{DisplayName: "void", Kind: valueobject.TypeKindVoid, ByteSize: -1}
}

func widgetPtrHandle() *outbound.TypeHandle {
	return &outbound.TypeHandle{
		DisplayName: "Widget *",
		Kind:        valueobject.TypeKindPointer,
		Pointee: &outbound.TypeHandle{
			DisplayName: "Widget",
			Kind:        valueobject.TypeKindRecord,
			ByteSize:    -1,
		},
		ByteSize: 8,
	}
}

func receiverArg() outbound.Argument {
	return outbound.Argument{Name: "self", Type: widgetPtrHandle()}
}

func widgetAlias() *outbound.Declaration {
	return &outbound.Declaration{
		Kind:          outbound.DeclarationTypeAlias,
		Name:          "___finch_bindgen___widgets___class___Widget",
		DisplayName:   "___finch_bindgen___widgets___class___Widget",
		Documentation: "A draggable widget.",
	}
}

func fn(name string, result *outbound.TypeHandle, args ...outbound.Argument) *outbound.Declaration {
	return &outbound.Declaration{
		Kind:        outbound.DeclarationFunction,
		Name:        name,
		DisplayName: name,
		Arguments:   args,
		ResultType:  result,
	}
}

// headerTree nests the given declarations inside the expected
// finch/bindgen/widgets namespace chain.
func headerTree(decls ...*outbound.Declaration) *outbound.Declaration {
	return &outbound.Declaration{
		Kind: outbound.DeclarationTranslationUnit,
		Children: []*outbound.Declaration{
			{
				Kind: outbound.DeclarationNamespace,
				Name: "finch",
				Children: []*outbound.Declaration{
					{
						Kind: outbound.DeclarationNamespace,
						Name: "bindgen",
						Children: []*outbound.Declaration{
							{
								Kind:     outbound.DeclarationNamespace,
								Name:     "widgets",
								Children: decls,
							},
						},
					},
				},
			},
		},
	}
}

func walk(t *testing.T, root *outbound.Declaration) (*TraversalState, error) {
	t.Helper()
	state := NewTraversalState()
	return state, NewWalker(state).Walk(context.Background(), root)
}

func TestWalker_FullSurface(t *testing.T) {
	root := headerTree(
		widgetAlias(),
		fn("___finch_bindgen___widgets___class___Widget___static___new", widgetPtrHandle(),
			outbound.Argument{Name: "width", Type: intHandle()},
			outbound.Argument{Name: "height", Type: intHandle()},
		),
		fn("___finch_bindgen___widgets___class___Widget___drop", voidHandle(), receiverArg()),
		fn("___finch_bindgen___widgets___class___Widget___method___resize", voidHandle(),
			receiverArg(),
			outbound.Argument{Name: "width", Type: intHandle()},
		),
		fn("___finch_bindgen___widgets___class___Widget___method_consume___destroy", voidHandle(), receiverArg()),
		fn("___finch_bindgen___widgets___class___Widget___static___count", intHandle()),
		fn("___finch_bindgen___widgets___class___Widget___getter___width", intHandle(), receiverArg()),
		fn("___finch_bindgen___widgets___class___Widget___setter___width", voidHandle(),
			receiverArg(),
			outbound.Argument{Name: "value", Type: intHandle()},
		),
	)

	state, err := walk(t, root)
	require.NoError(t, err)

	class, ok := state.Class("Widget")
	require.True(t, ok)

	assert.Equal(t, "Widget", class.Name)
	assert.Equal(t, "finch::bindgen::widgets::___finch_bindgen___widgets___class___Widget", class.CName)
	assert.Equal(t, "A draggable widget.", class.Documentation)

	require.NotNil(t, class.Constructor)
	assert.Equal(t, []string{"width", "height"}, class.Constructor.ArgNames)
	assert.Equal(t,
		"finch::bindgen::widgets::___finch_bindgen___widgets___class___Widget___static___new",
		class.Constructor.FunctionName)

	require.NotNil(t, class.Destructor)
	assert.Equal(t,
		"___finch_bindgen___widgets___class___Widget___drop",
		class.Destructor.CFunctionName)

	require.Len(t, class.Methods, 2)
	resize := class.Methods[0]
	assert.Equal(t, "resize", resize.MethodName)
	assert.False(t, resize.Consume)
	// The receiver is implicit and must not appear in the argument list.
	assert.Equal(t, []string{"width"}, resize.ArgNames)
	require.Len(t, resize.ArgTypes, 1)
	assert.Equal(t, valueobject.TypeKindInt, resize.ArgTypes[0].Kind)

	destroy := class.Methods[1]
	assert.Equal(t, "destroy", destroy.MethodName)
	assert.True(t, destroy.Consume)
	assert.Empty(t, destroy.ArgNames)

	require.Len(t, class.Statics, 1)
	assert.Equal(t, "count", class.Statics[0].MethodName)

	require.Len(t, class.Getters, 1)
	assert.Equal(t, "width", class.Getters[0].FieldName)
	assert.Equal(t, valueobject.TypeKindInt, class.Getters[0].Type.Kind)

	require.Len(t, class.Setters, 1)
	assert.Equal(t, "width", class.Setters[0].FieldName)
	assert.Equal(t, valueobject.TypeKindInt, class.Setters[0].Type.Kind)
}

func TestWalker_MemberBeforeAliasAborts(t *testing.T) {
	root := headerTree(
		fn("___finch_bindgen___widgets___class___Widget___method___resize", voidHandle(),
			receiverArg(),
		),
		widgetAlias(),
	)

	state, err := walk(t, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrClassNotFound)
	assert.Equal(t, 0, state.ClassCount())
}

func TestWalker_MethodWithoutReceiverAborts(t *testing.T) {
	root := headerTree(
		widgetAlias(),
		fn("___finch_bindgen___widgets___class___Widget___method___resize", voidHandle()),
	)

	_, err := walk(t, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingReceiver)
}

func TestWalker_SetterWithoutValueArgumentAborts(t *testing.T) {
	root := headerTree(
		widgetAlias(),
		fn("___finch_bindgen___widgets___class___Widget___setter___width", voidHandle(), receiverArg()),
	)

	_, err := walk(t, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingReceiver)
}

func TestWalker_UnresolvedArgumentTypeAborts(t *testing.T) {
	root := headerTree(
		widgetAlias(),
		fn("___finch_bindgen___widgets___class___Widget___method___resize", voidHandle(),
			receiverArg(),
			outbound.Argument{Name: "width", Type: nil},
		),
	)

	_, err := walk(t, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnresolvedType)
}

func TestWalker_NilRootAborts(t *testing.T) {
	_, err := walk(t, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoTranslationUnit)
}

func TestWalker_WarnAndSkipTiers(t *testing.T) {
	t.Run("identifier without prefix is skipped", func(t *testing.T) {
		root := headerTree(
			widgetAlias(),
			fn("widget_helper", voidHandle()),
		)

		state, err := walk(t, root)
		require.NoError(t, err)
		class, _ := state.Class("Widget")
		assert.Equal(t, 0, class.MemberCount())
	})

	t.Run("package mismatch is skipped", func(t *testing.T) {
		root := headerTree(
			widgetAlias(),
			fn("___finch_bindgen___gadgets___class___Widget___drop", voidHandle(), receiverArg()),
		)

		state, err := walk(t, root)
		require.NoError(t, err)
		class, _ := state.Class("Widget")
		assert.Nil(t, class.Destructor)
	})

	t.Run("unknown category is skipped", func(t *testing.T) {
		root := headerTree(
			widgetAlias(),
			fn("___finch_bindgen___widgets___enum___Color___drop", voidHandle(), receiverArg()),
		)

		state, err := walk(t, root)
		require.NoError(t, err)
		assert.Equal(t, 1, state.ClassCount())
	})

	t.Run("unknown member kind is skipped", func(t *testing.T) {
		root := headerTree(
			widgetAlias(),
			fn("___finch_bindgen___widgets___class___Widget___operator___plus", voidHandle(), receiverArg()),
		)

		state, err := walk(t, root)
		require.NoError(t, err)
		class, _ := state.Class("Widget")
		assert.Equal(t, 0, class.MemberCount())
	})

	t.Run("truncated member identifier is skipped", func(t *testing.T) {
		root := headerTree(
			widgetAlias(),
			fn("___finch_bindgen___widgets___class___Widget___method", voidHandle(), receiverArg()),
		)

		state, err := walk(t, root)
		require.NoError(t, err)
		class, _ := state.Class("Widget")
		assert.Empty(t, class.Methods)
	})

	t.Run("unexpected namespace subtree is not visited", func(t *testing.T) {
		root := &outbound.Declaration{
			Kind: outbound.DeclarationTranslationUnit,
			Children: []*outbound.Declaration{
				{
					Kind: outbound.DeclarationNamespace,
					Name: "finch",
					Children: []*outbound.Declaration{
						{
							Kind:     outbound.DeclarationNamespace,
							Name:     "detail",
							Children: []*outbound.Declaration{widgetAlias()},
						},
						{
							Kind: outbound.DeclarationNamespace,
							Name: "bindgen",
							Children: []*outbound.Declaration{
								{
									Kind:     outbound.DeclarationNamespace,
									Name:     "widgets",
									Children: []*outbound.Declaration{widgetAlias()},
								},
							},
						},
					},
				},
			},
		}

		state, err := walk(t, root)
		require.NoError(t, err)
		assert.Equal(t, 1, state.ClassCount())
	})
}

func TestWalker_DuplicateDeclarations(t *testing.T) {
	t.Run("repeated alias keeps the first registration", func(t *testing.T) {
		second := widgetAlias()
		second.Documentation = "Replacement docs."

		root := headerTree(widgetAlias(), second)

		state, err := walk(t, root)
		require.NoError(t, err)

		class, _ := state.Class("Widget")
		assert.Equal(t, "A draggable widget.", class.Documentation)
		assert.Equal(t, 1, state.ClassCount())
	})

	t.Run("repeated constructor keeps the last one", func(t *testing.T) {
		root := headerTree(
			widgetAlias(),
			fn("___finch_bindgen___widgets___class___Widget___static___new", widgetPtrHandle()),
			fn("___finch_bindgen___widgets___class___Widget___static___new", widgetPtrHandle(),
				outbound.Argument{Name: "width", Type: intHandle()},
			),
		)

		state, err := walk(t, root)
		require.NoError(t, err)

		class, _ := state.Class("Widget")
		require.NotNil(t, class.Constructor)
		assert.Equal(t, []string{"width"}, class.Constructor.ArgNames)
	})
}

func TestWalker_ExternCWrapperIsTransparent(t *testing.T) {
	root := headerTree(
		widgetAlias(),
		&outbound.Declaration{
			Kind: outbound.DeclarationUnexposed,
			Children: []*outbound.Declaration{
				fn("___finch_bindgen___widgets___class___Widget___drop", voidHandle(), receiverArg()),
			},
		},
	)

	state, err := walk(t, root)
	require.NoError(t, err)

	class, _ := state.Class("Widget")
	require.NotNil(t, class.Destructor)
}

func TestWalker_DeclarationsOutsidePackageNamespaceIgnored(t *testing.T) {
	root := &outbound.Declaration{
		Kind: outbound.DeclarationTranslationUnit,
		Children: []*outbound.Declaration{
			widgetAlias(),
			fn("___finch_bindgen___widgets___class___Widget___drop", voidHandle(), receiverArg()),
			headerTree(widgetAlias()).Children[0],
		},
	}

	state, err := walk(t, root)
	require.NoError(t, err)

	class, ok := state.Class("Widget")
	require.True(t, ok)
	assert.Nil(t, class.Destructor)
}

func TestWalker_Determinism(t *testing.T) {
	build := func() *outbound.Declaration {
		return headerTree(
			widgetAlias(),
			fn("___finch_bindgen___widgets___class___Widget___static___new", widgetPtrHandle()),
			fn("___finch_bindgen___widgets___class___Widget___method___resize", voidHandle(),
				receiverArg(),
				outbound.Argument{Name: "width", Type: intHandle()},
			),
			fn("___finch_bindgen___widgets___class___Widget___getter___width", intHandle(), receiverArg()),
		)
	}

	first, err := walk(t, build())
	require.NoError(t, err)
	second, err := walk(t, build())
	require.NoError(t, err)

	assert.Equal(t, first.Model(), second.Model())
}
