package properties

import (
	"strings"
	"unicode"
)

// This file is a direct port of the character-index predicates from the
// original wrapper generator's property recognizer. The arithmetic looks
// unidiomatic for Go on purpose: the exact index offsets are load-bearing
// for the fixed-point matching loop elsewhere in this package, and
// rewriting them as regular expressions would risk silently changing which
// edge cases are accepted (see the Open Questions in SPEC_FULL.md — this
// package preserves e.g. an upper-case "To" followed by an upper-case letter
// or digit anywhere after the "Set" prefix registering as enumerated, and any
// name ending in the literal two characters "On" registering as boolean
// whether or not that suffix is a genuine word boundary).

func isUpperOrDigit(b byte) bool {
	return unicode.IsUpper(rune(b)) || unicode.IsDigit(rune(b))
}

func isUpper(b byte) bool {
	return unicode.IsUpper(rune(b))
}

func isSet(name string) bool {
	return len(name) > 3 && name[0] == 'S' && name[1] == 'e' && name[2] == 't' && unicode.IsUpper(rune(name[3]))
}

func isSetNth(name string) bool {
	return isSet(name) && len(name) > 6 &&
		name[3] == 'N' && name[4] == 't' && name[5] == 'h' && unicode.IsUpper(rune(name[6]))
}

func isSetNumberOf(name string) bool {
	if !isSet(name) || len(name) < 12 {
		return false
	}
	return name[3] == 'N' && name[4] == 'u' && name[5] == 'm' && name[6] == 'b' &&
		name[7] == 'e' && name[8] == 'r' && name[9] == 'O' && name[10] == 'f' &&
		unicode.IsUpper(rune(name[11])) && name[len(name)-1] == 's'
}

func isGet(name string) bool {
	return len(name) > 3 && name[0] == 'G' && name[1] == 'e' && name[2] == 't' && unicode.IsUpper(rune(name[3]))
}

func isGetNth(name string) bool {
	return isGet(name) && len(name) > 6 &&
		name[3] == 'N' && name[4] == 't' && name[5] == 'h' && unicode.IsUpper(rune(name[6]))
}

func isGetNumberOf(name string) bool {
	if !isGet(name) || len(name) < 12 {
		return false
	}
	return name[3] == 'N' && name[4] == 'u' && name[5] == 'm' && name[6] == 'b' &&
		name[7] == 'e' && name[8] == 'r' && name[9] == 'O' && name[10] == 'f' &&
		unicode.IsUpper(rune(name[11])) && name[len(name)-1] == 's'
}

func isAdd(name string) bool {
	return len(name) > 3 && name[0] == 'A' && name[1] == 'd' && name[2] == 'd' && unicode.IsUpper(rune(name[3]))
}

func isRemove(name string) bool {
	return len(name) > 6 && name[0] == 'R' && name[1] == 'e' && name[2] == 'm' &&
		name[3] == 'o' && name[4] == 'v' && name[5] == 'e' && unicode.IsUpper(rune(name[6]))
}

func isRemoveAll(name string) bool {
	if !isRemove(name) || len(name) < 10 {
		return false
	}
	return name[6] == 'A' && name[7] == 'l' && name[8] == 'l' &&
		unicode.IsUpper(rune(name[9])) && name[len(name)-1] == 's'
}

func isBoolean(name string) bool {
	n := len(name)
	if n > 2 && name[n-2] == 'O' && name[n-1] == 'n' {
		return true
	}
	if n > 3 && name[n-3] == 'O' && name[n-2] == 'f' && name[n-1] == 'f' {
		return true
	}
	return false
}

func isEnumerated(name string) bool {
	if !isSet(name) {
		return false
	}
	n := len(name) - 3
	for i := 3; i < n; i++ {
		if name[i] == 'T' && name[i+1] == 'o' && isUpperOrDigit(name[i+2]) {
			return true
		}
	}
	return false
}

func isAsString(name string) bool {
	if !isGet(name) || len(name) <= 11 {
		return false
	}
	return strings.HasSuffix(name, "AsString")
}

func isGetMinValue(name string) bool {
	if !isGet(name) || len(name) <= 11 {
		return false
	}
	return strings.HasSuffix(name, "MinValue")
}

func isGetMaxValue(name string) bool {
	if !isGet(name) || len(name) <= 11 {
		return false
	}
	return strings.HasSuffix(name, "MaxValue")
}

// stripPrefix returns the method name with its recognized Set/Get/Add/
// Remove-family prefix removed, or the name unchanged if none applies.
func stripPrefix(name string) string {
	switch {
	case isGetNth(name), isSetNth(name):
		return name[6:]
	case isGet(name), isSet(name), isAdd(name):
		return name[3:]
	case isRemoveAll(name):
		return name[9:]
	case isRemove(name):
		return name[6:]
	}
	return name
}

// isValidSuffix validates the trailing fragment left over after stripping
// a property name out of a method name.
func isValidSuffix(methName, propertyName, suffix string) bool {
	switch {
	case suffix == "On":
		return true
	case suffix == "Off":
		return true
	case isSet(methName) && len(suffix) >= 3 && suffix[0] == 'T' && suffix[1] == 'o' && isUpperOrDigit(suffix[2]):
		return true
	case isGet(methName) && len(suffix) >= 3 && suffix[0] == 'A' && suffix[1] == 's' && isUpperOrDigit(suffix[2]):
		return true
	case isGet(methName) && (suffix == "MinValue" || suffix == "MaxValue"):
		return true
	case isRemoveAll(methName):
		return suffix == "s"
	case isGetNumberOf(methName) || isSetNumberOf(methName):
		if strings.HasPrefix(propertyName, "NumberOf") {
			return suffix == ""
		}
		return suffix == "s"
	case suffix == "":
		return true
	}
	return false
}
