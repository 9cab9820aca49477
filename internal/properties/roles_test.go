package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRoleBasic(t *testing.T) {
	assert.Equal(t, BasicSet, classifyRole(methodAttributes{Name: "SetRadius"}, true))
	assert.Equal(t, BasicGet, classifyRole(methodAttributes{Name: "GetRadius"}, true))
}

func TestClassifyRoleIndexedAndNth(t *testing.T) {
	assert.Equal(t, IndexSet, classifyRole(methodAttributes{Name: "SetPoint", IsIndexed: true}, true))
	assert.Equal(t, NthSet, classifyRole(methodAttributes{Name: "SetNthPoint", IsIndexed: true}, true))
	assert.Equal(t, IndexGet, classifyRole(methodAttributes{Name: "GetPoint", IsIndexed: true}, true))
	assert.Equal(t, NthGet, classifyRole(methodAttributes{Name: "GetNthPoint", IsIndexed: true}, true))
}

func TestClassifyRoleShortFormVsLongForm(t *testing.T) {
	// shortForm=true: the property name is "Foo", so GetFooMinValue is the
	// specialized MinGet role.
	assert.Equal(t, MinGet, classifyRole(methodAttributes{Name: "GetFooMinValue"}, true))
	// shortForm=false: the property name is itself "FooMinValue", so the
	// method is a plain BasicGet against that literal property name.
	assert.Equal(t, BasicGet, classifyRole(methodAttributes{Name: "GetFooMinValue"}, false))
}

func TestClassifyRoleBoolean(t *testing.T) {
	assert.Equal(t, BoolOn, classifyRole(methodAttributes{Name: "DebugOn", IsBoolean: true}, true))
	assert.Equal(t, BoolOff, classifyRole(methodAttributes{Name: "DebugOff", IsBoolean: true}, true))
}

func TestClassifyRoleAddRemove(t *testing.T) {
	assert.Equal(t, BasicAdd, classifyRole(methodAttributes{Name: "AddInput"}, true))
	assert.Equal(t, BasicRem, classifyRole(methodAttributes{Name: "RemoveInput"}, true))
	assert.Equal(t, RemoveAll, classifyRole(methodAttributes{Name: "RemoveAllInputs"}, true))
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "BASIC_GET", RoleName(BasicGet))
	assert.Equal(t, "REMOVEALL", RoleName(RemoveAll))
	assert.Equal(t, "", RoleName(RoleNone))
}

func TestRoleSetUnionAndTest(t *testing.T) {
	var set RoleSet
	set = set.with(BasicGet)
	set = set.with(BasicSet)
	assert.True(t, set.has(BasicGet))
	assert.True(t, set.has(BasicSet))
	assert.False(t, set.has(MultiGet))
}
