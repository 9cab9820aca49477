package properties

// dominates reports whether a structurally-twinned method carrying
// attribute set "a" should be preferred over one carrying "b", per the
// float/double, array-count, and legacy preference rules. It is written as
// a single symmetric predicate so both the ingestion-time and seed-time
// passes below can call it in either direction instead of duplicating the
// original generator's two near-identical branches.
func dominates(a, b methodAttributes) bool {
	if a.Type.Base == Double && b.Type.Base == Float {
		return true
	}
	if a.Type.Base == b.Type.Base && a.Count > b.Count {
		return true
	}
	if !a.IsLegacy && b.IsLegacy {
		return true
	}
	return false
}

// isStructuralTwin reports whether two methods have the same name and the
// same structural shape, making them candidates for repeat-overload
// dominance resolution.
func isStructuralTwin(a, b methodAttributes) bool {
	return a.Name != "" && a.Name == b.Name &&
		a.Type.Indirection == b.Type.Indirection &&
		a.IsPublic == b.IsPublic &&
		a.IsProtected == b.IsProtected &&
		a.IsHinted == b.IsHinted &&
		a.IsMultiValue == b.IsMultiValue &&
		a.IsIndexed == b.IsIndexed &&
		a.IsEnumerated == b.IsEnumerated &&
		a.IsBoolean == b.IsBoolean
}

// markIngestionRepeats runs the backward-only, no-propagation repeat scan
// over the full set of eligible methods, once, before synthesis begins.
// Only attrs with HasProperty already true participate. For each j, the
// first twin among methods[:j] with a dominance relation to methods[j]
// ends the scan, and whichever of the two is dominated gets IsRepeat set
// in place; nothing else is copied, since role and property index do not
// exist yet.
func markIngestionRepeats(methods []methodAttributes) {
	for j := range methods {
		if !methods[j].HasProperty {
			continue
		}
		for i := 0; i < j; i++ {
			if !methods[i].HasProperty {
				continue
			}
			if !isStructuralTwin(methods[j], methods[i]) {
				continue
			}
			switch {
			case dominates(methods[i], methods[j]):
				methods[j].IsRepeat = true
			case dominates(methods[j], methods[i]):
				methods[i].IsRepeat = true
			default:
				continue
			}
			break
		}
	}
}

// propagateSeedRepeats re-scans the entire method array for structural
// twins of the method at index seed, and for every twin found copies the
// freshly-assigned role/property of whichever side dominates onto the
// dominated side. This is the seed-time half of the two-pass repeat dance:
// it is what actually makes a dominated overload inherit its twin's role
// and property assignment, since at ingestion time no property existed
// yet to inherit.
func propagateSeedRepeats(methods []methodAttributes, roleBit []RoleSet, propertyOf []int, seed int) {
	for i := range methods {
		if i == seed {
			continue
		}
		if !methods[i].HasProperty {
			continue
		}
		if !isStructuralTwin(methods[seed], methods[i]) {
			continue
		}
		switch {
		case dominates(methods[seed], methods[i]):
			roleBit[i] = roleBit[seed]
			propertyOf[i] = propertyOf[seed]
		case dominates(methods[i], methods[seed]):
			roleBit[seed] = roleBit[i]
			propertyOf[seed] = propertyOf[i]
		}
	}
}
