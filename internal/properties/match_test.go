package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesPropertyBasicGetter(t *testing.T) {
	p := Property{Name: "Radius", Type: TypeCode{Base: Double}}
	meth := methodAttributes{Name: "GetRadius", HasProperty: true, Type: TypeCode{Base: Double}, IsPublic: true}
	matched, longMatch := matchesProperty(&p, meth)
	assert.True(t, matched)
	assert.False(t, longMatch)
}

func TestMatchesPropertyRejectsTypeMismatch(t *testing.T) {
	p := Property{Name: "Radius", Type: TypeCode{Base: Double}}
	meth := methodAttributes{Name: "GetRadius", HasProperty: true, Type: TypeCode{Base: Int}, IsPublic: true}
	matched, _ := matchesProperty(&p, meth)
	assert.False(t, matched)
}

func TestMatchesPropertyGetNumberOfLongMatch(t *testing.T) {
	p := Property{Name: "NumberOfPoints", Type: TypeCode{Base: Int}}
	meth := methodAttributes{Name: "GetNumberOfPoints", HasProperty: true, Type: TypeCode{Base: Int}, IsPublic: true}
	matched, longMatch := matchesProperty(&p, meth)
	assert.True(t, matched)
	assert.True(t, longMatch)
}

func TestMatchesPropertyGetNumberOfShortMatch(t *testing.T) {
	p := Property{Name: "Point"}
	p.PublicMethods = p.PublicMethods.with(IndexGet)
	meth := methodAttributes{Name: "GetNumberOfPoints", HasProperty: true, Type: TypeCode{Base: Int}, IsPublic: true}
	matched, longMatch := matchesProperty(&p, meth)
	assert.True(t, matched)
	assert.False(t, longMatch)
}

func TestMatchesPropertyRemoveAllRequiresAddRole(t *testing.T) {
	p := Property{Name: "Input", Type: TypeCode{Base: Object, Indirection: Pointer}, ClassName: "Source"}
	meth := methodAttributes{Name: "RemoveAllInputs", HasProperty: true, Type: TypeCode{Base: Void}, IsPublic: true}
	matched, _ := matchesProperty(&p, meth)
	assert.False(t, matched)

	p.PublicMethods = p.PublicMethods.with(BasicAdd)
	matched, _ = matchesProperty(&p, meth)
	assert.True(t, matched)
}

func TestMatchesPropertyMultiValuePromotesPointer(t *testing.T) {
	p := Property{Name: "Color", Type: TypeCode{Base: Double, Indirection: Pointer}, Count: 3}
	meth := methodAttributes{
		Name: "GetColor", HasProperty: true, IsMultiValue: true,
		Type: TypeCode{Base: Double, Indirection: Ref}, Count: 3, IsPublic: true,
	}
	matched, _ := matchesProperty(&p, meth)
	assert.True(t, matched)
}

func TestMatchesPropertyBooleanPromotesToInt(t *testing.T) {
	p := Property{Name: "Debug", Type: TypeCode{Base: Int}}
	meth := methodAttributes{Name: "DebugOn", HasProperty: true, IsBoolean: true, Type: TypeCode{Base: Void}, IsPublic: true}
	matched, _ := matchesProperty(&p, meth)
	assert.True(t, matched)
}

func TestMatchesPropertyObjectRequiresSameClassName(t *testing.T) {
	p := Property{Name: "Input", Type: TypeCode{Base: Object, Indirection: Pointer}, ClassName: "Source"}
	meth := methodAttributes{
		Name: "AddInput", HasProperty: true, Type: TypeCode{Base: Object, Indirection: Pointer},
		ClassName: "Other", IsPublic: true,
	}
	matched, _ := matchesProperty(&p, meth)
	assert.False(t, matched)

	meth.ClassName = "Source"
	matched, _ = matchesProperty(&p, meth)
	assert.True(t, matched)
}
