package cmdtree

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

const requiredAnnotation = "cryptic_annotation_required"

// MarkRequired marks an already-declared flag as required. Enforcement
// happens in the node's parse step, alongside the flag set's own errors;
// pflag itself has no required-flag notion, so this is layered on through
// flag annotations the same way cobra does it.
func MarkRequired(fs *flag.FlagSet, name string) {
	f := fs.Lookup(name)
	if f == nil {
		panic(fmt.Sprintf("cmdtree: marking undeclared flag %q required", name))
	}
	if f.Annotations == nil {
		f.Annotations = map[string][]string{}
	}
	f.Annotations[requiredAnnotation] = []string{"true"}
}

func checkRequired(fs *flag.FlagSet) error {
	var missing []string
	fs.VisitAll(func(f *flag.Flag) {
		if len(f.Annotations[requiredAnnotation]) > 0 && !f.Changed {
			missing = append(missing, f.Name)
		}
	})
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("required flag(s) %q not set", strings.Join(missing, `", "`))
}

// EnumValue is a flag value constrained to a fixed set of choices.
type EnumValue struct {
	value   string
	choices []string
}

var _ flag.Value = (*EnumValue)(nil)

// NewEnumValue returns an EnumValue holding def that accepts only the
// given choices.
func NewEnumValue(def string, choices ...string) *EnumValue {
	return &EnumValue{value: def, choices: choices}
}

func (e *EnumValue) String() string { return e.value }

func (e *EnumValue) Set(v string) error {
	for _, c := range e.choices {
		if v == c {
			e.value = v
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, must be one of %s", v, strings.Join(e.choices, ", "))
}

func (e *EnumValue) Type() string { return "string" }
