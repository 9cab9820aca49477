// Package report renders a synthesized property list as styled terminal
// output, reusing codenerd's lipgloss color-palette-as-package-vars
// pattern, scoped down to the handful of styles this single report needs.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jawae/vtkprops/internal/properties"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38"))
	roleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Italic(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
)

// Render renders cp as a human-readable report for className.
func Render(className string, cp properties.ClassProperties) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %d properties", className, len(cp.Properties))))
	b.WriteString("\n")

	for _, p := range cp.Properties {
		b.WriteString(renderProperty(p))
		b.WriteString("\n")
	}

	if dropped := countDropped(cp); dropped > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d method(s) did not match any property", dropped)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderProperty(p properties.Property) string {
	line := fmt.Sprintf("  %s  %s", nameStyle.Render(p.Name), roleStyle.Render(strings.Join(activeRoles(p), "|")))
	if len(p.EnumConstantNames) > 0 {
		line += mutedStyle.Render(fmt.Sprintf(" [%s]", strings.Join(p.EnumConstantNames, ", ")))
	}
	return line
}

// activeRoles collects the canonical token for every role bit set on any
// of a property's three access-level bitfields.
func activeRoles(p properties.Property) []string {
	combined := p.PublicMethods | p.ProtectedMethods | p.PrivateMethods
	var names []string
	for r := properties.BasicGet; r <= properties.RemoveAll; r++ {
		if combined.Has(r) {
			names = append(names, properties.RoleName(r))
		}
	}
	return names
}

func countDropped(cp properties.ClassProperties) int {
	n := 0
	for _, idx := range cp.PropertyOf {
		if idx == -1 {
			n++
		}
	}
	return n
}
