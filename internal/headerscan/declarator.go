package headerscan

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jawae/vtkprops/internal/properties"
)

// classifyDeclarator inspects one field_declaration or function_definition
// node. The third return value is false when the node isn't a method
// declaration at all (a plain data member, a nested type, ...) — the
// caller keeps descending in that case. When it is method-shaped but the
// scanner can't confidently resolve it, it returns a SkippedSignature with
// a reason instead of a Function.
func classifyDeclarator(n *sitter.Node, src []byte) (properties.Function, SkippedSignature, bool) {
	declNode := n.ChildByFieldName("declarator")
	if declNode == nil {
		return properties.Function{}, SkippedSignature{}, false
	}

	fnDeclarator, pointerDepth, isRef := unwrapDeclarator(declNode)
	if fnDeclarator == nil || fnDeclarator.Type() != "function_declarator" {
		return properties.Function{}, SkippedSignature{}, false
	}

	sig := text(n, src)

	nameNode := fnDeclarator.ChildByFieldName("declarator")
	if nameNode == nil {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "no identifier found in declarator"}, true
	}
	name := text(nameNode, src)
	if name == "" {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "empty method name"}, true
	}
	if strings.HasPrefix(name, "operator") {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "operator overload, not a property accessor"}, true
	}
	if strings.HasPrefix(name, "~") {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "destructor"}, true
	}

	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "missing return type"}, true
	}
	base, className, ok := mapType(typeNode, src)
	if !ok {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "unsupported return type: " + text(typeNode, src)}, true
	}
	isConst := containsConstKeyword(src, n.StartByte(), declNode.StartByte())
	ind, ok := indirectionOf(pointerDepth, isRef, isConst)
	if !ok {
		return properties.Function{}, SkippedSignature{Signature: sig, Reason: "unsupported return indirection shape"}, true
	}

	paramsNode := fnDeclarator.ChildByFieldName("parameters")
	var args []properties.Argument
	if paramsNode != nil {
		for i := 0; i < int(paramsNode.ChildCount()); i++ {
			child := paramsNode.Child(i)
			if child.Type() != "parameter_declaration" {
				continue
			}
			arg, reason, ok := classifyParameter(child, src)
			if !ok {
				return properties.Function{}, SkippedSignature{Signature: sig, Reason: reason}, true
			}
			args = append(args, arg)
		}
	}

	fn := properties.Function{
		Name:            name,
		ReturnType:      properties.TypeCode{Base: base, Indirection: ind},
		ReturnClassName: className,
		Args:            args,
		// The scanner never resolves access specifiers (public:/protected:)
		// to a parent class_specifier walk; declarations it sees are assumed
		// public, matching the common convention of the fixtures it targets.
		IsPublic: true,
	}
	return fn, SkippedSignature{}, true
}

func classifyParameter(paramDecl *sitter.Node, src []byte) (properties.Argument, string, bool) {
	typeNode := paramDecl.ChildByFieldName("type")
	if typeNode == nil {
		return properties.Argument{}, "parameter missing type", false
	}
	base, className, ok := mapType(typeNode, src)
	if !ok {
		return properties.Argument{}, "unsupported parameter type: " + text(typeNode, src), false
	}

	declNode := paramDecl.ChildByFieldName("declarator")
	pointerDepth, isRef := 0, false
	declEnd := paramDecl.EndByte()
	if declNode != nil {
		_, pointerDepth, isRef = unwrapDeclarator(declNode)
		declEnd = declNode.StartByte()
	}

	isConst := containsConstKeyword(src, paramDecl.StartByte(), declEnd)
	ind, ok := indirectionOf(pointerDepth, isRef, isConst)
	if !ok {
		return properties.Argument{}, "unsupported parameter indirection shape", false
	}

	return properties.Argument{Type: properties.TypeCode{Base: base, Indirection: ind}, ClassName: className}, "", true
}

// unwrapDeclarator peels pointer_declarator/reference_declarator layers off
// a declarator chain, returning the innermost declarator node plus the
// pointer depth and whether a reference wraps it.
func unwrapDeclarator(n *sitter.Node) (*sitter.Node, int, bool) {
	pointerDepth := 0
	isRef := false
	cur := n
	for cur != nil {
		switch cur.Type() {
		case "pointer_declarator":
			pointerDepth++
			cur = cur.ChildByFieldName("declarator")
		case "reference_declarator":
			isRef = true
			cur = cur.ChildByFieldName("declarator")
		default:
			return cur, pointerDepth, isRef
		}
	}
	return nil, pointerDepth, isRef
}

// mapType resolves a tree-sitter type node to the core's BaseType, honoring
// only the scalar kinds the core names. vtkIdType is special-cased by
// identifier text; any other type_identifier is treated as an Object
// reference with that identifier as the class name.
func mapType(typeNode *sitter.Node, src []byte) (properties.BaseType, string, bool) {
	t := text(typeNode, src)
	switch typeNode.Type() {
	case "primitive_type":
		switch t {
		case "void":
			return properties.Void, "", true
		case "int", "long", "short":
			return properties.Int, "", true
		case "double":
			return properties.Double, "", true
		case "float":
			return properties.Float, "", true
		case "char":
			return properties.Char, "", true
		case "bool":
			return properties.Bool, "", true
		}
		return 0, "", false
	case "sized_type_specifier":
		switch t {
		case "unsigned int", "unsigned":
			return properties.UnsignedInt, "", true
		case "unsigned char":
			return properties.UnsignedChar, "", true
		}
		return 0, "", false
	case "type_identifier":
		if t == "vtkIdType" {
			return properties.IdType, "", true
		}
		return properties.Object, t, true
	}
	return 0, "", false
}

// indirectionOf maps a {pointer depth, reference, const} shape onto the
// core's Indirection enum. Shapes the core has no analogue for (e.g.
// pointer-to-pointer-to-reference) are reported as unsupported rather than
// guessed at.
func indirectionOf(pointerDepth int, isRef, isConst bool) (properties.Indirection, bool) {
	switch {
	case pointerDepth == 0 && !isRef:
		return properties.None, true
	case pointerDepth == 0 && isRef:
		return properties.Ref, true
	case pointerDepth == 1 && !isRef && !isConst:
		return properties.Pointer, true
	case pointerDepth == 1 && !isRef && isConst:
		return properties.ConstPointer, true
	case pointerDepth == 1 && isRef && !isConst:
		return properties.PointerRef, true
	case pointerDepth == 1 && isRef && isConst:
		return properties.ConstPointerRef, true
	case pointerDepth == 2 && !isRef:
		return properties.PointerPointer, true
	}
	return properties.None, false
}

// containsConstKeyword reports whether the literal token "const" appears,
// as a whole word, in src[start:end]. Used to recover constness that the
// grammar attaches as a loose sibling token rather than a field.
func containsConstKeyword(src []byte, start, end uint32) bool {
	if end > uint32(len(src)) || start > end {
		return false
	}
	for _, tok := range strings.Fields(string(src[start:end])) {
		if tok == "const" {
			return true
		}
	}
	return false
}
