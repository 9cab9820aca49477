package properties

import "testing"

import "github.com/stretchr/testify/assert"

func TestNamePredicates(t *testing.T) {
	assert.True(t, isSet("SetRadius"))
	assert.False(t, isSet("setRadius"))
	assert.False(t, isSet("Set"))

	assert.True(t, isSetNth("SetNthPoint"))
	assert.False(t, isSetNth("SetPoint"))

	assert.True(t, isSetNumberOf("SetNumberOfPoints"))
	assert.False(t, isSetNumberOf("SetNumberOfPoint"))

	assert.True(t, isGetNumberOf("GetNumberOfPoints"))

	assert.True(t, isAdd("AddInput"))
	assert.True(t, isRemove("RemoveInput"))
	assert.True(t, isRemoveAll("RemoveAllInputs"))
	assert.False(t, isRemoveAll("RemoveAllInput"))

	// Preserved quirk: only the literal two/three trailing characters
	// "On"/"Off" matter; nothing requires that suffix to be a genuine word
	// boundary, so a name like "SeasonOn" would register as boolean purely
	// because it ends that way.
	assert.True(t, isBoolean("DebugOn"))
	assert.True(t, isBoolean("DebugOff"))
	assert.False(t, isBoolean("Button"))
	assert.True(t, isBoolean("SeasonOn"))

	assert.True(t, isEnumerated("SetModeToRed"))
	// "To" anywhere in the tail after position 3 counts, but only as an
	// upper-case 'T' followed by 'o' and an upper-case letter or digit, so
	// the lower-case "to" inside SetStoreMode does not make it enumerated.
	assert.False(t, isEnumerated("SetStoreMode"))
	assert.False(t, isEnumerated("SetRadius"))

	assert.True(t, isAsString("GetModeAsString"))
	assert.True(t, isGetMinValue("GetFooMinValue"))
	assert.True(t, isGetMaxValue("GetFooMaxValue"))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "Radius", stripPrefix("SetRadius"))
	assert.Equal(t, "Radius", stripPrefix("GetRadius"))
	assert.Equal(t, "Point", stripPrefix("SetNthPoint"))
	assert.Equal(t, "Point", stripPrefix("GetNthPoint"))
	assert.Equal(t, "Input", stripPrefix("AddInput"))
	assert.Equal(t, "Inputs", stripPrefix("RemoveAllInputs"))
	assert.Equal(t, "Input", stripPrefix("RemoveInput"))
	assert.Equal(t, "Frobnicate", stripPrefix("Frobnicate"))
}

func TestIsValidSuffix(t *testing.T) {
	assert.True(t, isValidSuffix("DebugOn", "Debug", "On"))
	assert.True(t, isValidSuffix("DebugOff", "Debug", "Off"))
	assert.True(t, isValidSuffix("SetModeToRed", "Mode", "ToRed"))
	assert.True(t, isValidSuffix("GetModeAsString", "Mode", "AsString"))
	assert.True(t, isValidSuffix("GetFooMinValue", "Foo", "MinValue"))
	assert.True(t, isValidSuffix("GetFooMinValue", "FooMinValue", ""))
	assert.True(t, isValidSuffix("RemoveAllInputs", "Inputs", "s"))
	assert.True(t, isValidSuffix("GetNumberOfPoints", "Points", "s"))
	assert.True(t, isValidSuffix("GetNumberOfPoints", "NumberOfPoints", ""))
	assert.False(t, isValidSuffix("SetRadiusExtra", "Radius", "Extra"))
	assert.True(t, isValidSuffix("SetRadius", "Radius", ""))
}
