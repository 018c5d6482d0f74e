// Package theme provides selector storage and theme loading for the
// theme collaborator.
//
// Widgets attach a Selector property (usually shared into their
// descendants); an external styling engine resolves it against a loaded
// Theme. This package stores and matches selectors by their string form, it
// does not implement cascading or specificity.
package theme

import "strings"

// Selector is a CSS-style selector naming a widget element, optional style
// classes, and optional pseudo-classes (transient states like "focused").
// Selectors are values; With, Class, and Pseudo return modified copies so a
// shared cell holding one is never mutated through aliasing of its slices.
type Selector struct {
	element string
	classes []string
	pseudo  []string
}

// NewSelector creates a selector for the given element name.
func NewSelector(element string) Selector {
	return Selector{element: element}
}

// With returns a copy with the element name replaced.
func (s Selector) With(element string) Selector {
	s.element = element
	return s
}

// Class returns a copy with a style class appended.
func (s Selector) Class(name string) Selector {
	s.classes = append(cloneStrings(s.classes), name)
	return s
}

// Pseudo returns a copy with a pseudo-class appended.
func (s Selector) Pseudo(name string) Selector {
	s.pseudo = append(cloneStrings(s.pseudo), name)
	return s
}

// WithoutPseudo returns a copy with all pseudo-classes removed.
func (s Selector) WithoutPseudo() Selector {
	s.pseudo = nil
	return s
}

// Element returns the element name.
func (s Selector) Element() string { return s.element }

// HasPseudo reports whether the selector carries the given pseudo-class.
func (s Selector) HasPseudo(name string) bool {
	for _, p := range s.pseudo {
		if p == name {
			return true
		}
	}
	return false
}

// String renders the selector in CSS form: element.class:pseudo.
func (s Selector) String() string {
	var sb strings.Builder
	sb.WriteString(s.element)
	for _, c := range s.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	for _, p := range s.pseudo {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	return sb.String()
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
