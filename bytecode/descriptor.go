package bytecode

import (
	"github.com/wippyai/bytegen/errors"
)

// MethodType is a parsed method descriptor. Field types keep their encoded
// form: "I", "[J", "Ljava/lang/String;". A void return is "V".
type MethodType struct {
	Params []string
	Return string
}

// ParseMethodDescriptor splits a method descriptor into parameter and
// return field types.
func ParseMethodDescriptor(desc string) (MethodType, error) {
	var mt MethodType
	if len(desc) == 0 || desc[0] != '(' {
		return mt, errors.InvalidData(errors.PhaseParse, "method descriptor must start with '(': "+desc)
	}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		n, err := skipField(desc, i)
		if err != nil {
			return mt, err
		}
		mt.Params = append(mt.Params, desc[i:n])
		i = n
	}
	if i >= len(desc) {
		return mt, errors.InvalidData(errors.PhaseParse, "unterminated parameter list: "+desc)
	}
	mt.Return = desc[i+1:]
	if mt.Return != "V" {
		n, err := skipField(desc, i+1)
		if err != nil {
			return mt, err
		}
		if n != len(desc) {
			return mt, errors.InvalidData(errors.PhaseParse, "trailing data after return type: "+desc)
		}
	}
	return mt, nil
}

// ArgumentSlots returns the number of operand slots taken by the parameters
// of a method descriptor. long and double take two slots.
func ArgumentSlots(desc string) (int, error) {
	mt, err := ParseMethodDescriptor(desc)
	if err != nil {
		return 0, err
	}
	slots := 0
	for _, p := range mt.Params {
		switch p {
		case "J", "D":
			slots += 2
		default:
			slots++
		}
	}
	return slots, nil
}

// skipField returns the index just past the field descriptor starting at i.
func skipField(desc string, i int) (int, error) {
	for i < len(desc) && desc[i] == '[' {
		i++
	}
	if i >= len(desc) {
		return 0, errors.InvalidData(errors.PhaseParse, "truncated field descriptor: "+desc)
	}
	switch desc[i] {
	case 'Z', 'B', 'C', 'S', 'I', 'F', 'J', 'D':
		return i + 1, nil
	case 'L':
		for j := i + 1; j < len(desc); j++ {
			if desc[j] == ';' {
				if j == i+1 {
					return 0, errors.InvalidData(errors.PhaseParse, "empty class name: "+desc)
				}
				return j + 1, nil
			}
		}
		return 0, errors.InvalidData(errors.PhaseParse, "unterminated class name: "+desc)
	}
	return 0, errors.InvalidData(errors.PhaseParse, "unknown field type '"+string(desc[i])+"': "+desc)
}
