package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAttributesGetterReturnsValue(t *testing.T) {
	fn := Function{Name: "GetRadius", ReturnType: TypeCode{Base: Double}}
	a, ok := extractAttributes(&fn)
	require.True(t, ok)
	assert.True(t, a.HasProperty)
	assert.Equal(t, Double, a.Type.Base)
}

func TestExtractAttributesSetter(t *testing.T) {
	fn := Function{
		Name:       "SetRadius",
		ReturnType: TypeCode{Base: Void},
		Args:       []Argument{{Type: TypeCode{Base: Double}}},
	}
	a, ok := extractAttributes(&fn)
	require.True(t, ok)
	assert.Equal(t, Double, a.Type.Base)
}

func TestExtractAttributesMultiValueSetter(t *testing.T) {
	fn := Function{
		Name:       "SetColor",
		ReturnType: TypeCode{Base: Void},
		Args: []Argument{
			{Type: TypeCode{Base: Double}},
			{Type: TypeCode{Base: Double}},
			{Type: TypeCode{Base: Double}},
		},
	}
	a, ok := extractAttributes(&fn)
	require.True(t, ok)
	assert.True(t, a.IsMultiValue)
	assert.Equal(t, 3, a.Count)
}

func TestExtractAttributesMultiValueRejectsMixedTypes(t *testing.T) {
	fn := Function{
		Name:       "SetColor",
		ReturnType: TypeCode{Base: Void},
		Args: []Argument{
			{Type: TypeCode{Base: Double}},
			{Type: TypeCode{Base: Int}},
			{Type: TypeCode{Base: Double}},
		},
	}
	_, ok := extractAttributes(&fn)
	assert.False(t, ok)
}

func TestExtractAttributesIndexedSetGet(t *testing.T) {
	setFn := Function{
		Name:       "SetPoint",
		ReturnType: TypeCode{Base: Void},
		Args: []Argument{
			{Type: TypeCode{Base: Int}},
			{Type: TypeCode{Base: Double}},
		},
	}
	a, ok := extractAttributes(&setFn)
	require.True(t, ok)
	assert.True(t, a.IsIndexed)

	getFn := Function{
		Name:       "GetPoint",
		ReturnType: TypeCode{Base: Double},
		Args:       []Argument{{Type: TypeCode{Base: Int}}},
	}
	a2, ok := extractAttributes(&getFn)
	require.True(t, ok)
	assert.True(t, a2.IsIndexed)
}

func TestExtractAttributesBooleanEnumeratedRemoveAll(t *testing.T) {
	on := Function{Name: "DebugOn", ReturnType: TypeCode{Base: Void}}
	a, ok := extractAttributes(&on)
	require.True(t, ok)
	assert.True(t, a.IsBoolean)

	toRed := Function{Name: "SetModeToRed", ReturnType: TypeCode{Base: Void}}
	a2, ok := extractAttributes(&toRed)
	require.True(t, ok)
	assert.True(t, a2.IsEnumerated)

	removeAll := Function{Name: "RemoveAllInputs", ReturnType: TypeCode{Base: Void}}
	a3, ok := extractAttributes(&removeAll)
	require.True(t, ok)
	assert.False(t, a3.IsBoolean)
	assert.False(t, a3.IsEnumerated)
}

func TestExtractAttributesRejectsOperatorAndArrayFailure(t *testing.T) {
	_, ok := extractAttributes(&Function{Name: "operator+", IsOperator: true})
	assert.False(t, ok)

	_, ok = extractAttributes(&Function{Name: "SetRadius", ArrayFailure: true})
	assert.False(t, ok)

	_, ok = extractAttributes(&Function{Name: ""})
	assert.False(t, ok)
}

func TestExtractAttributesRejectsUnrelatedIndexedShape(t *testing.T) {
	// First arg is int, but the name isn't Set/Get/Add/Remove shaped.
	fn := Function{
		Name:       "ComputeAt",
		ReturnType: TypeCode{Base: Void},
		Args: []Argument{
			{Type: TypeCode{Base: Int}},
			{Type: TypeCode{Base: Double}},
		},
	}
	_, ok := extractAttributes(&fn)
	assert.False(t, ok)
}

func TestExtractAttributesAddRemoveObject(t *testing.T) {
	fn := Function{
		Name:       "AddInput",
		ReturnType: TypeCode{Base: Void},
		Args:       []Argument{{Type: TypeCode{Base: Object, Indirection: Pointer}, ClassName: "Object"}},
	}
	a, ok := extractAttributes(&fn)
	require.True(t, ok)
	assert.Equal(t, Object, a.Type.Base)
	assert.Equal(t, "Object", a.ClassName)
}
