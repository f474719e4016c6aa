package router

import (
	"fmt"
	"strings"
)

// ParamKind tells the tokenizer how a parameter consumes input.
type ParamKind int

const (
	// Required consumes exactly one token and must be present.
	Required ParamKind = iota
	// Optional consumes one token when one is left.
	Optional
	// Multiple consumes every remaining token; zero is fine. Must be last.
	Multiple
	// Unparsed consumes the rest of the message verbatim, inner whitespace
	// included. Must be last.
	Unparsed
)

func (k ParamKind) String() string {
	switch k {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Multiple:
		return "multiple"
	case Unparsed:
		return "unparsed"
	}
	return "unknown"
}

// Param declares one slot of a command signature.
type Param struct {
	Name string
	Kind ParamKind
}

// validateSignature enforces the shape: required parameters first, then
// optionals, then at most one trailing Multiple or Unparsed.
func validateSignature(params []Param) error {
	stage := Required
	for i, p := range params {
		if p.Name == "" {
			return fmt.Errorf("parameter %d has no name", i)
		}
		switch p.Kind {
		case Required:
			if stage != Required {
				return fmt.Errorf("required parameter %q after %s", p.Name, stage)
			}
		case Optional:
			if stage == Multiple || stage == Unparsed {
				return fmt.Errorf("optional parameter %q after %s", p.Name, stage)
			}
			stage = Optional
		case Multiple, Unparsed:
			if i != len(params)-1 {
				return fmt.Errorf("%s parameter %q must be last", p.Kind, p.Name)
			}
			stage = p.Kind
		default:
			return fmt.Errorf("parameter %q has unknown kind %d", p.Name, p.Kind)
		}
	}
	return nil
}

// FormatSignature renders a signature as a usage line, e.g. "<user> [reason...]".
func FormatSignature(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		switch p.Kind {
		case Required:
			parts = append(parts, "<"+p.Name+">")
		case Optional:
			parts = append(parts, "["+p.Name+"]")
		case Multiple:
			parts = append(parts, "["+p.Name+"...]")
		case Unparsed:
			parts = append(parts, "<"+p.Name+"...>")
		}
	}
	return strings.Join(parts, " ")
}
