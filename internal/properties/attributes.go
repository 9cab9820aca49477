package properties

// extractAttributes turns one Function into a methodAttributes record.
// The second return value is false when the signature is too complex, or
// structurally disqualified, for the property recognizer to interpret.
func extractAttributes(fn *Function) (methodAttributes, bool) {
	attrs := methodAttributes{
		Name:        fn.Name,
		Comment:     fn.Comment,
		IsPublic:    fn.IsPublic,
		IsProtected: fn.IsProtected,
		IsLegacy:    fn.IsLegacy,
	}

	if fn.ReturnType.hasQualifier(Static) && !fn.ReturnsFunctionPointer {
		attrs.IsStatic = true
	}

	if fn.Name == "" || fn.ArrayFailure || fn.IsOperator {
		return methodAttributes{}, false
	}

	indexed := 0
	if len(fn.Args) > 0 && isPlainInt(fn.argType(0)) {
		if isVoidDirect(fn.ReturnType) && len(fn.Args) == 2 {
			indexed = 1
			if !isSetNumberOf(fn.Name) {
				allSame := true
				for _, a := range fn.Args {
					if a.Type != fn.argType(0) {
						allSame = false
						break
					}
				}
				if allSame {
					indexed = 0
				}
			}
		}
		if !(isVoidDirect(fn.ReturnType)) && len(fn.Args) == 1 {
			indexed = 1
		}
		attrs.IsIndexed = indexed == 1
	}

	// Pattern 1: getter-returns-value.
	if !isVoidDirect(fn.ReturnType) && len(fn.Args) == indexed {
		if isGet(fn.Name) {
			attrs.HasProperty = true
			attrs.Type = fn.ReturnType
			if fn.HasHint {
				attrs.Count = fn.HintSize
			}
			attrs.IsHinted = fn.HasHint
			attrs.ClassName = fn.ReturnClassName
			return attrs, true
		}
	}

	// Pattern 2: setter / RHS-getter / add-remove-object.
	if isVoidDirect(fn.ReturnType) && len(fn.Args) == 1+indexed {
		valueType := fn.argType(indexed)
		switch {
		case isSet(fn.Name):
			attrs.HasProperty = true
			attrs.Type = valueType
			attrs.Count = fn.argCount(indexed)
			attrs.ClassName = fn.argClassName(indexed)
			return attrs, true
		case isGet(fn.Name) && fn.argCount(indexed) > 0 && isIndirect(valueType) && !isConst(valueType):
			attrs.HasProperty = true
			attrs.Type = valueType
			attrs.Count = fn.argCount(indexed)
			attrs.ClassName = fn.argClassName(indexed)
			return attrs, true
		case (isAdd(fn.Name) || isRemove(fn.Name)) && valueType.Base == Object && valueType.Indirection == Pointer:
			attrs.HasProperty = true
			attrs.Type = valueType
			attrs.Count = fn.argCount(indexed)
			attrs.ClassName = fn.argClassName(indexed)
			return attrs, true
		}
	}

	// Pattern 3: multiple same-typed arguments.
	if len(fn.Args) > 1 && indexed == 0 {
		shared := fn.argType(0)
		allSame := true
		for _, a := range fn.Args {
			if a.Type != shared {
				allSame = false
				break
			}
		}
		if allSame {
			n := len(fn.Args)
			switch {
			case isSet(fn.Name) && !isIndirect(shared) && isVoidDirect(fn.ReturnType):
				attrs.HasProperty = true
				attrs.Type = shared
				attrs.Count = n
				attrs.IsMultiValue = true
				return attrs, true
			case isGet(fn.Name) && shared.Indirection == Ref && !isConst(shared) && isVoidDirect(fn.ReturnType):
				attrs.HasProperty = true
				attrs.Type = shared
				attrs.Count = n
				attrs.IsMultiValue = true
				return attrs, true
			case isAdd(fn.Name) && !isIndirect(shared) &&
				(isVoidDirect(fn.ReturnType) || (!isIndirect(fn.ReturnType) && (fn.ReturnType.Base == Int || fn.ReturnType.Base == IdType))):
				attrs.HasProperty = true
				attrs.Type = shared
				attrs.Count = n
				attrs.IsMultiValue = true
				return attrs, true
			}
		}
	}

	// Pattern 4: void return, no arguments.
	if isVoidDirect(fn.ReturnType) && len(fn.Args) == 0 {
		attrs.Type = TypeCode{Base: Void}
		switch {
		case isBoolean(fn.Name):
			attrs.HasProperty = true
			attrs.IsBoolean = true
			return attrs, true
		case isEnumerated(fn.Name):
			attrs.HasProperty = true
			attrs.IsEnumerated = true
			return attrs, true
		case isRemoveAll(fn.Name):
			attrs.HasProperty = true
			return attrs, true
		}
	}

	return methodAttributes{}, false
}
