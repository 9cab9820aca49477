package properties

// BaseType names the scalar kind carried by a TypeCode, independent of
// indirection or qualifiers.
type BaseType int

const (
	Void BaseType = iota
	Int
	IdType
	Float
	Double
	Char
	UnsignedInt
	UnsignedChar
	Bool
	Object
)

// Indirection names how a value is reached: directly, by reference, or
// through one of the pointer shapes the original wrapper generator
// recognized.
type Indirection int

const (
	None Indirection = iota
	Ref
	Pointer
	ConstPointer
	PointerPointer
	PointerRef
	ConstPointerRef
)

// Qualifiers is a small bitset of type qualifiers the core cares about.
// Only Const and Static are ever inspected.
type Qualifiers int

const (
	Const Qualifiers = 1 << iota
	Static
)

// TypeCode is the structured replacement for the original wrapper's opaque
// bitfield type code: a base type, an indirection, and a qualifier set.
// The core never does bit arithmetic on a TypeCode; it reads the fields
// directly or through the TypeTraits functions in typetraits.go.
type TypeCode struct {
	Base        BaseType
	Indirection Indirection
	Qualifiers  Qualifiers
}

func (t TypeCode) hasQualifier(q Qualifiers) bool { return t.Qualifiers&q != 0 }

// Argument is one parameter of a Function.
type Argument struct {
	Type         TypeCode
	ClassName    string
	ElementCount int
}

// Function is the already-parsed representation of one C++ member function
// that the core consumes. It is produced by an external collaborator (a
// header parser, or this module's own best-effort internal/headerscan) and
// is never mutated by the core.
type Function struct {
	Name string

	ReturnType      TypeCode
	ReturnClassName string

	// ReturnsFunctionPointer marks a function-pointer return type. The
	// static qualifier on such a return type does not mean the method
	// itself is static (it describes the pointee), so the extractor
	// excludes this case from the IsStatic determination.
	ReturnsFunctionPointer bool

	// Args holds every declared parameter. The core only ever inspects the
	// first one or two entries for indexing logic; callers are free to
	// populate as many as the real signature has without any hard cap.
	Args []Argument

	HasHint  bool
	HintSize int

	IsOperator bool
	IsLegacy   bool
	IsPublic   bool
	IsProtected bool

	// ArrayFailure marks that whatever produced this Function gave up
	// decoding part of the signature; such a function is always rejected.
	ArrayFailure bool

	Comment string
}

func (f *Function) argType(i int) TypeCode {
	if i < 0 || i >= len(f.Args) {
		return TypeCode{}
	}
	return f.Args[i].Type
}

func (f *Function) argCount(i int) int {
	if i < 0 || i >= len(f.Args) {
		return 0
	}
	return f.Args[i].ElementCount
}

func (f *Function) argClassName(i int) string {
	if i < 0 || i >= len(f.Args) {
		return ""
	}
	return f.Args[i].ClassName
}

// methodAttributes is the intermediate record produced by the attribute
// extractor for every function the core can interpret as an ivar access.
type methodAttributes struct {
	Name    string
	Comment string

	HasProperty bool
	Type        TypeCode
	Count       int
	ClassName   string

	IsPublic    bool
	IsProtected bool
	IsLegacy    bool
	IsStatic    bool

	IsRepeat     bool
	IsHinted     bool
	IsMultiValue bool
	IsIndexed    bool
	IsEnumerated bool
	IsBoolean    bool
}
