package properties

// Build synthesizes the property model for one class's methods. It is a
// pure function: the same Function slice always produces the same
// ClassProperties, and Build never mutates its input.
//
// The returned error is always nil today; it exists so callers (and this
// module's own CLI) have a stable signature to extend if a future input
// source can produce structurally invalid data Build must refuse rather
// than silently drop (see DESIGN.md, Open Question 2).
func Build(functions []Function) (ClassProperties, error) {
	n := len(functions)
	attrs := make([]methodAttributes, n)

	for i := range functions {
		a, ok := extractAttributes(&functions[i])
		a.HasProperty = ok
		attrs[i] = a
	}

	markIngestionRepeats(attrs)

	s := &synthesizer{
		attrs:      attrs,
		matched:    make([]bool, n),
		roleOf:     make([]Role, n),
		propertyOf: make([]int, n),
	}
	for i := range s.propertyOf {
		s.propertyOf[i] = -1
		if !attrs[i].HasProperty || attrs[i].IsRepeat {
			s.matched[i] = true
		}
	}

	// Phase 1: setters, except enumerated setters and SetNumberOf setters.
	for i := range attrs {
		if !s.matched[i] && isSet(attrs[i].Name) && !attrs[i].IsEnumerated && !isSetNumberOf(attrs[i].Name) {
			s.seed(i)
		}
	}

	// Phase 2: SetNumberOf setters without a matched indexed-set partner.
	for i := range attrs {
		if !s.matched[i] && isSetNumberOf(attrs[i].Name) {
			s.seed(i)
		}
	}

	// Phase 3: getters, except GetAsString and GetNumberOf.
	for i := range attrs {
		if !s.matched[i] && isGet(attrs[i].Name) && !isAsString(attrs[i].Name) && !isGetNumberOf(attrs[i].Name) {
			s.seed(i)
		}
	}

	// Phase 4: GetNumberOf getters without a matched indexed-get partner.
	for i := range attrs {
		if !s.matched[i] && isGetNumberOf(attrs[i].Name) {
			s.seed(i)
		}
	}

	// Phase 5: Add* methods.
	for i := range attrs {
		if !s.matched[i] && isAdd(attrs[i].Name) {
			s.seed(i)
		}
	}

	return ClassProperties{
		Properties: s.props,
		RoleOf:     s.roleOf,
		PropertyOf: s.propertyOf,
	}, nil
}

// synthesizer carries the parallel bookkeeping arrays the outer sweep
// phases and the per-property fixed-point match loop both need.
type synthesizer struct {
	attrs []methodAttributes

	matched    []bool
	roleOf     []Role
	propertyOf []int
	props      []Property
}

// seed creates a new Property from method i, lets RepeatDetector's
// seed-time pass fold in any dominated twins, and then runs the
// match-to-fixed-point loop that pulls in every other method the Matcher
// accepts.
func (s *synthesizer) seed(i int) {
	s.matched[i] = true

	idx := len(s.props)
	p := newProperty(s.attrs[i])
	s.roleOf[i] = classifyRole(s.attrs[i], false)
	s.propertyOf[i] = idx

	roleBit := make([]RoleSet, len(s.attrs))
	roleBit[i] = roleBit[i].with(s.roleOf[i])
	propagateSeedRepeats(s.attrs, roleBit, s.propertyOf, i)
	for j, role := range roleBit {
		if j == i || s.propertyOf[j] != idx {
			continue
		}
		s.matched[j] = true
		s.roleOf[j] = roleFromSet(role)
	}

	for {
		admittedAny := false
		for j := range s.attrs {
			if s.matched[j] {
				continue
			}
			ok, longMatch := matchesProperty(&p, s.attrs[j])
			if !ok {
				continue
			}
			s.matched[j] = true
			admittedAny = true
			s.roleOf[j] = p.admit(s.attrs[j], longMatch)
			s.propertyOf[j] = idx
		}
		if !admittedAny {
			break
		}
	}

	s.props = append(s.props, p)
}

// roleFromSet recovers the single Role that propagateSeedRepeats copied
// into a one-bit RoleSet. A dominated twin never contributes its own role
// independently, so the set it inherits always carries exactly one bit.
func roleFromSet(set RoleSet) Role {
	for r := BasicGet; r <= RemoveAll; r++ {
		if set.has(r) {
			return r
		}
	}
	return RoleNone
}
