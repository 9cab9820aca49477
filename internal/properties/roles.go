package properties

// Role is the tagged-sum replacement for the original magic-integer method
// category. A method contributes exactly one Role to exactly one access
// level; RoleSet is the compact bitfield form used for per-access-level
// storage on Property, where more than one method (hence more than one
// Role) can contribute to the same property.
type Role int

const (
	RoleNone Role = iota
	BasicGet
	BasicSet
	MultiGet
	MultiSet
	IndexGet
	IndexSet
	NthGet
	NthSet
	RhsGet
	IndexRhsGet
	NthRhsGet
	StringGet
	EnumSet
	BoolOn
	BoolOff
	MinGet
	MaxGet
	GetNum
	SetNum
	BasicAdd
	MultiAdd
	IndexAdd
	BasicRem
	IndexRem
	RemoveAll
)

// RoleSet is a bitfield over Role, used for Property.PublicMethods,
// ProtectedMethods, PrivateMethods, and LegacyMethods.
type RoleSet uint32

func (s RoleSet) bit(r Role) RoleSet {
	if r == RoleNone {
		return 0
	}
	return 1 << uint(r-1)
}

func (s RoleSet) with(r Role) RoleSet { return s | s.bit(r) }

func (s RoleSet) has(r Role) bool { return r != RoleNone && s&s.bit(r) != 0 }

// Has reports whether r is set in s. Exported for outer-layer callers
// (internal/report, internal/codegen) that need to inspect a Property's
// role bitfields from outside the package; the core itself uses the
// unexported has() form throughout.
func (s RoleSet) Has(r Role) bool { return s.has(r) }

// With returns s with r added. Exported for outer-layer callers (internal/codegen)
// that need to build a Property's role bitfields from outside the package; the
// core itself uses the unexported with() form throughout.
func (s RoleSet) With(r Role) RoleSet { return s.with(r) }

// RoleName returns the stable canonical token for a role bit, matching the
// original generator's diagnostic strings. It returns "" for RoleNone or
// any value outside the enum's range.
func RoleName(r Role) string {
	switch r {
	case BasicGet:
		return "BASIC_GET"
	case BasicSet:
		return "BASIC_SET"
	case MultiGet:
		return "MULTI_GET"
	case MultiSet:
		return "MULTI_SET"
	case IndexGet:
		return "INDEX_GET"
	case IndexSet:
		return "INDEX_SET"
	case NthGet:
		return "NTH_GET"
	case NthSet:
		return "NTH_SET"
	case RhsGet:
		return "RHS_GET"
	case IndexRhsGet:
		return "INDEX_RHS_GET"
	case NthRhsGet:
		return "NTH_RHS_GET"
	case StringGet:
		return "STRING_GET"
	case EnumSet:
		return "ENUM_SET"
	case BoolOn:
		return "BOOL_ON"
	case BoolOff:
		return "BOOL_OFF"
	case MinGet:
		return "MIN_GET"
	case MaxGet:
		return "MAX_GET"
	case GetNum:
		return "GET_NUM"
	case SetNum:
		return "SET_NUM"
	case BasicAdd:
		return "BASIC_ADD"
	case MultiAdd:
		return "MULTI_ADD"
	case IndexAdd:
		return "INDEX_ADD"
	case BasicRem:
		return "BASIC_REM"
	case IndexRem:
		return "INDEX_REM"
	case RemoveAll:
		return "REMOVEALL"
	}
	return ""
}

// classifyRole is the pure function mapping a method's attributes plus the
// shortForm disambiguator (= !longMatch) to the single role it contributes.
func classifyRole(meth methodAttributes, shortForm bool) Role {
	name := meth.Name

	switch {
	case isSet(name):
		switch {
		case meth.IsEnumerated:
			return EnumSet
		case meth.IsIndexed:
			if isSetNth(name) {
				return NthSet
			}
			return IndexSet
		case meth.IsMultiValue:
			return MultiSet
		case shortForm && isSetNumberOf(name):
			return SetNum
		default:
			return BasicSet
		}

	case meth.IsBoolean:
		if name[len(name)-1] == 'n' {
			return BoolOn
		}
		return BoolOff

	case isGet(name):
		switch {
		case shortForm && isGetMinValue(name):
			return MinGet
		case shortForm && isGetMaxValue(name):
			return MaxGet
		case shortForm && isAsString(name):
			return StringGet
		case meth.IsIndexed && meth.Count > 0 && !meth.IsHinted:
			if isGetNth(name) {
				return NthRhsGet
			}
			return IndexRhsGet
		case meth.IsIndexed:
			if isGetNth(name) {
				return NthGet
			}
			return IndexGet
		case meth.IsMultiValue:
			return MultiGet
		case meth.Count > 0 && !meth.IsHinted:
			return RhsGet
		case shortForm && isGetNumberOf(name):
			return GetNum
		default:
			return BasicGet
		}

	case isRemove(name):
		switch {
		case isRemoveAll(name):
			return RemoveAll
		case meth.IsIndexed:
			return IndexRem
		default:
			return BasicRem
		}

	case isAdd(name):
		switch {
		case meth.IsIndexed:
			return IndexAdd
		case meth.IsMultiValue:
			return MultiAdd
		default:
			return BasicAdd
		}
	}

	return RoleNone
}
