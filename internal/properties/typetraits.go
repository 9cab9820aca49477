package properties

// This file realizes the "TypeTraits" collaborator the original wrapper
// generator exposed over its opaque type-code bitfield. There is exactly
// one implementation of this contract anywhere this module runs, and
// nothing in the rest of the pipeline ever needs to substitute a different
// one, so it is a package of plain functions rather than a Go interface
// (see DESIGN.md, Open Question 1).

func isIndirect(t TypeCode) bool {
	return t.Indirection != None
}

func isPointer(t TypeCode) bool {
	switch t.Indirection {
	case Pointer, ConstPointer, PointerPointer, PointerRef, ConstPointerRef:
		return true
	}
	return false
}

func isConst(t TypeCode) bool {
	return t.hasQualifier(Const)
}

func hasQualifier(t TypeCode) bool {
	return t.Qualifiers != 0
}

func stripQualifier(t TypeCode) TypeCode {
	t.Qualifiers = 0
	return t
}

func baseOf(t TypeCode) BaseType {
	return t.Base
}

func indirectionOf(t TypeCode) Indirection {
	return t.Indirection
}

func isVoidDirect(t TypeCode) bool {
	return t.Base == Void && !isIndirect(t)
}

func isPlainInt(t TypeCode) bool {
	return (t.Base == Int || t.Base == IdType) && !isIndirect(t)
}
