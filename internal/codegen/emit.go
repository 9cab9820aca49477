// Package codegen emits Go accessor-stub source from a synthesized
// Property list, purely as a demonstration consumer of the property
// model. It is not a C++ binding generator: the emitted functions are
// empty stubs naming the discovered shape of each property, reusing the
// teacher's jennifer-based file-assembly pattern.
package codegen

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/jawae/vtkprops/internal"
	"github.com/jawae/vtkprops/internal/properties"
)

// EmitAccessors writes a Go source file declaring one accessor-stub
// function per role pair discovered on each property in props. Only a
// property's PublicMethods roles are considered; protected and private
// roles produce no stubs.
func EmitAccessors(w io.Writer, packageName string, props []properties.Property) error {
	file := jen.NewFile(packageName)
	file.HeaderComment("Code generated by vtkprops emit. DO NOT EDIT.")

	for _, p := range props {
		emitProperty(file, p)
	}

	if err := file.Render(w); err != nil {
		return fmt.Errorf("codegen: render: %w", err)
	}
	return nil
}

func emitProperty(file *jen.File, p properties.Property) {
	t := goType(p)
	stub := jen.Panic(jen.Lit("not implemented"))

	roles := p.PublicMethods

	switch {
	case roles.Has(properties.IndexGet) || roles.Has(properties.IndexSet):
		if roles.Has(properties.IndexGet) {
			file.Func().Id("Get" + p.Name).Params(jen.Id("i").Int()).Add(t).Block(stub)
		}
		if roles.Has(properties.IndexSet) {
			file.Func().Id("Set" + p.Name).Params(jen.Id("i").Int(), jen.Id("v").Add(t)).Block(stub)
		}
	case roles.Has(properties.NthGet) || roles.Has(properties.NthSet):
		if roles.Has(properties.NthGet) {
			file.Func().Id("GetNth" + p.Name).Params(jen.Id("i").Int()).Add(t).Block(stub)
		}
		if roles.Has(properties.NthSet) {
			file.Func().Id("SetNth" + p.Name).Params(jen.Id("i").Int(), jen.Id("v").Add(t)).Block(stub)
		}
	case roles.Has(properties.MultiGet) || roles.Has(properties.MultiSet):
		sliceT := jen.Index().Add(t)
		if roles.Has(properties.MultiGet) {
			file.Func().Id("Get" + p.Name).Params().Add(sliceT).Block(stub)
		}
		if roles.Has(properties.MultiSet) {
			file.Func().Id("Set" + p.Name).Params(jen.Id("v").Add(sliceT)).Block(stub)
		}
	case roles.Has(properties.BasicGet) || roles.Has(properties.BasicSet):
		if roles.Has(properties.BasicGet) {
			file.Func().Id("Get" + p.Name).Params().Add(t).Block(stub)
		}
		if roles.Has(properties.BasicSet) {
			file.Func().Id("Set" + p.Name).Params(jen.Id("v").Add(t)).Block(stub)
		}
	}

	if roles.Has(properties.BoolOn) {
		file.Func().Id(p.Name + "On").Params().Block(stub)
	}
	if roles.Has(properties.BoolOff) {
		file.Func().Id(p.Name + "Off").Params().Block(stub)
	}

	if roles.Has(properties.MinGet) {
		file.Func().Id("Get" + p.Name + "MinValue").Params().Add(t).Block(stub)
	}
	if roles.Has(properties.MaxGet) {
		file.Func().Id("Get" + p.Name + "MaxValue").Params().Add(t).Block(stub)
	}
	if roles.Has(properties.StringGet) {
		file.Func().Id("Get" + p.Name + "AsString").Params().String().Block(stub)
	}
	if roles.Has(properties.GetNum) {
		file.Func().Id("GetNumberOf" + p.Name + "s").Params().Int().Block(stub)
	}
	if roles.Has(properties.SetNum) {
		file.Func().Id("SetNumberOf" + p.Name + "s").Params(jen.Id("n").Int()).Block(stub)
	}

	if roles.Has(properties.BasicAdd) || roles.Has(properties.MultiAdd) || roles.Has(properties.IndexAdd) {
		file.Func().Id("Add" + p.Name).Params(jen.Id("v").Add(t)).Block(stub)
	}
	if roles.Has(properties.BasicRem) || roles.Has(properties.IndexRem) {
		file.Func().Id("Remove" + p.Name).Params(jen.Id("v").Add(t)).Block(stub)
	}
	if roles.Has(properties.RemoveAll) {
		file.Func().Id("RemoveAll" + p.Name + "s").Params().Block(stub)
	}

	for _, state := range p.EnumConstantNames {
		file.Func().Id("Set" + p.Name + "To" + state).Params().Block(stub)
	}
}

// goType resolves a Property's scalar/object type to the jennifer Go type
// code an accessor stub should use.
func goType(p properties.Property) *jen.Statement {
	var base *jen.Statement
	switch p.Type.Base {
	case properties.Void:
		base = jen.Struct()
	case properties.Int:
		base = jen.Int()
	case properties.IdType:
		base = jen.Int64()
	case properties.Float:
		base = jen.Float32()
	case properties.Double:
		base = jen.Float64()
	case properties.Char:
		base = jen.Byte()
	case properties.UnsignedInt:
		base = jen.Uint()
	case properties.UnsignedChar:
		base = jen.Byte()
	case properties.Bool:
		base = jen.Bool()
	case properties.Object:
		if p.ClassName == "" {
			internal.PanicOnError(fmt.Errorf("codegen: object property %q has no class name", p.Name))
		}
		base = jen.Op("*").Id(p.ClassName)
	default:
		internal.PanicOnError(fmt.Errorf("codegen: property %q has unrecognized base type %d", p.Name, p.Type.Base))
	}
	return base
}
