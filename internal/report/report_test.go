package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jawae/vtkprops/internal/properties"
)

func TestRenderIncludesPropertyNameAndRoles(t *testing.T) {
	fns := []properties.Function{
		{Name: "SetRadius", ReturnType: properties.TypeCode{Base: properties.Void}, Args: []properties.Argument{{Type: properties.TypeCode{Base: properties.Double}}}, IsPublic: true},
		{Name: "GetRadius", ReturnType: properties.TypeCode{Base: properties.Double}, IsPublic: true},
	}
	cp, err := properties.Build(fns)
	assert.NoError(t, err)

	out := Render("vtkSphereSource", cp)
	assert.Contains(t, out, "vtkSphereSource")
	assert.Contains(t, out, "Radius")
	assert.Contains(t, out, "BASIC_GET")
	assert.Contains(t, out, "BASIC_SET")
}

func TestRenderReportsDroppedMethodCount(t *testing.T) {
	fns := []properties.Function{
		{Name: "operator+", IsOperator: true, IsPublic: true, ReturnType: properties.TypeCode{Base: properties.Int}},
	}
	cp, err := properties.Build(fns)
	assert.NoError(t, err)

	out := Render("vtkVector", cp)
	assert.Contains(t, out, "1 method(s) did not match any property")
}
