package properties

// Property is one discovered logical attribute of a class.
type Property struct {
	Name string

	Type      TypeCode
	Count     int
	ClassName string

	IsStatic bool

	PublicMethods    RoleSet
	ProtectedMethods RoleSet
	PrivateMethods   RoleSet
	LegacyMethods    RoleSet

	EnumConstantNames []string

	Comment string
}

func (p *Property) accessBitfield(meth methodAttributes) *RoleSet {
	switch {
	case meth.IsPublic:
		return &p.PublicMethods
	case meth.IsProtected:
		return &p.ProtectedMethods
	default:
		return &p.PrivateMethods
	}
}

// newProperty seeds a fresh Property from the method used to discover it.
// The seed always contributes its role in long form (shortForm = false),
// per §4.6 of the governing specification.
func newProperty(meth methodAttributes) Property {
	role := classifyRole(meth, false)

	typ := meth.Type
	if meth.IsBoolean || meth.IsEnumerated {
		typ = TypeCode{Base: Int}
	}

	promoted := baseOf(typ)
	ind := indirectionOf(typ)
	resultIndirection := None
	switch {
	case !meth.IsMultiValue && (ind == Pointer || ind == PointerRef):
		resultIndirection = Pointer
	case meth.IsMultiValue && (ind == None || ind == Ref):
		resultIndirection = Pointer
	case !meth.IsMultiValue && (ind == ConstPointer || ind == ConstPointerRef):
		resultIndirection = ConstPointer
	case ind == PointerPointer || (ind == Pointer && meth.IsMultiValue):
		resultIndirection = PointerPointer
	}

	p := Property{
		Name:      stripPrefix(meth.Name),
		Type:      TypeCode{Base: promoted, Indirection: resultIndirection},
		ClassName: meth.ClassName,
		Count:     meth.Count,
		IsStatic:  meth.IsStatic,
		Comment:   meth.Comment,
	}

	bf := p.accessBitfield(meth)
	*bf = bf.with(role)
	if meth.IsLegacy {
		p.LegacyMethods = p.LegacyMethods.with(role)
	}

	return p
}

// admit records a method that the match loop has decided belongs to this
// property, applying the role the Matcher's longMatch flag resolves to.
func (p *Property) admit(meth methodAttributes, longMatch bool) Role {
	if meth.IsStatic {
		p.IsStatic = true
	}

	role := classifyRole(meth, !longMatch)

	bf := p.accessBitfield(meth)
	*bf = bf.with(role)
	if meth.IsLegacy {
		p.LegacyMethods = p.LegacyMethods.with(role)
	}

	if meth.IsEnumerated {
		p.recordEnumConstant(meth)
	}

	return role
}

// recordEnumConstant harvests the state name out of a SetValueToState
// method's suffix, appending it to EnumConstantNames if not already
// present.
func (p *Property) recordEnumConstant(meth methodAttributes) {
	name := meth.Name
	// Enumerated methods are always Set* methods, so the suffix begins
	// right after the 3-char "Set" prefix plus the property name length.
	m := 3 + len(p.Name)
	if m+2 >= len(name) {
		return
	}
	if name[m] != 'T' || name[m+1] != 'o' || !isUpperOrDigit(name[m+2]) {
		return
	}
	state := name[m+2:]
	if state == "" {
		return
	}
	for _, existing := range p.EnumConstantNames {
		if existing == state {
			return
		}
	}
	p.EnumConstantNames = append(p.EnumConstantNames, state)
}

// ClassProperties is the immutable result of synthesizing properties from a
// class's methods: the ordered property list plus, for every eligible
// method, its assigned role and owning property index.
type ClassProperties struct {
	Properties []Property

	// RoleOf and PropertyOf are parallel to the input Function slice.
	// PropertyOf[i] is -1 when method i was never assigned to a property.
	RoleOf     []Role
	PropertyOf []int
}
