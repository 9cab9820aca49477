package properties

import "strings"

// matchesProperty decides whether the candidate method belongs to the
// tentative property, returning the membership decision and the longMatch
// flag RoleClassifier needs to disambiguate long-form vs. short-form roles
// for this one method. longMatch is never stored on Property; it is a
// local fact about this particular method/property pairing.
func matchesProperty(p *Property, meth methodAttributes) (matched bool, longMatch bool) {
	bitfield := *p.accessBitfield(meth)

	propertyName := p.Name
	name := stripPrefix(meth.Name)
	if name == "" || propertyName == "" {
		return false, false
	}

	n := len(propertyName)

	switch {
	case isGetNumberOf(meth.Name) || isSetNumberOf(meth.Name):
		if strings.HasPrefix(propertyName, "NumberOf") && len(propertyName) > 8 && isUpper(propertyName[8]) {
			longMatch = true
		} else {
			name = meth.Name[11:]
		}
	case isGetMinValue(meth.Name):
		if n >= 8 && strings.HasSuffix(propertyName, "MinValue") {
			longMatch = true
		}
	case isGetMaxValue(meth.Name):
		if n >= 8 && strings.HasSuffix(propertyName, "MaxValue") {
			longMatch = true
		}
	case isAsString(meth.Name):
		if n >= 8 && strings.HasSuffix(propertyName, "AsString") {
			longMatch = true
		}
	}

	if !strings.HasPrefix(name, propertyName) {
		return false, false
	}

	suffix := name[n:]
	if !isValidSuffix(meth.Name, propertyName, suffix) {
		return false, false
	}

	methType := meth.Type
	if hasQualifier(methType) {
		methType = stripQualifier(methType)
	}

	if isRemoveAll(meth.Name) && isVoidDirect(methType) &&
		(bitfield.has(BasicAdd) || bitfield.has(MultiAdd)) {
		return true, longMatch
	}

	if isGetNumberOf(meth.Name) && isPlainInt(methType) &&
		(bitfield.has(IndexGet) || bitfield.has(NthGet)) {
		return true, longMatch
	}

	if isSetNumberOf(meth.Name) && isPlainInt(methType) &&
		(bitfield.has(IndexSet) || bitfield.has(NthSet)) {
		return true, longMatch
	}

	switch methType.Indirection {
	case Ref:
		methType.Indirection = None
	case PointerRef:
		methType.Indirection = Pointer
	case ConstPointerRef:
		methType.Indirection = ConstPointer
	}

	if meth.IsMultiValue {
		switch methType.Indirection {
		case Pointer:
			methType.Indirection = PointerPointer
		case None:
			methType.Indirection = Pointer
		default:
			return false, longMatch
		}
	}

	if meth.IsBoolean || meth.IsEnumerated ||
		(isAsString(meth.Name) && methType.Base == Char && methType.Indirection == Pointer) {
		if !isIndirect(p.Type) &&
			(p.Type.Base == Int || p.Type.Base == UnsignedInt || p.Type.Base == UnsignedChar ||
				(meth.IsBoolean && p.Type.Base == Bool)) {
			methType = p.Type
		}
	}

	if methType != p.Type || meth.Count != p.Count {
		return false, longMatch
	}

	if methType.Base == Object {
		if meth.IsMultiValue || !isPointer(methType) || meth.Count != 0 ||
			meth.ClassName == "" || p.ClassName == "" || meth.ClassName != p.ClassName {
			return false, longMatch
		}
	}

	return true, longMatch
}
