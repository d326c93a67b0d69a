package stack

// Width is the number of operand slots a value occupies.
type Width int

const (
	WidthZero   Width = 0 // no value
	WidthSingle Width = 1 // references and 32-bit or narrower primitives
	WidthDouble Width = 2 // long and double
)

// Size returns the slot count.
func (w Width) Size() int {
	return int(w)
}

// ToIncreasingSize returns the size of pushing one value of this width.
func (w Width) ToIncreasingSize() Size {
	return NewSize(int(w), int(w))
}

// ToDecreasingSize returns the size of popping one value of this width.
func (w Width) ToDecreasingSize() Size {
	return NewSize(-int(w), 0)
}

// Maximum returns the wider of w and other.
func (w Width) Maximum(other Width) Width {
	return max(w, other)
}

func (w Width) String() string {
	switch w {
	case WidthZero:
		return "zero"
	case WidthSingle:
		return "single"
	case WidthDouble:
		return "double"
	}
	return "invalid"
}

// Category is the value category of a type as seen by the operand stack.
type Category int

const (
	Void Category = iota
	Boolean
	Byte
	Char
	Short
	Int
	Float
	Reference
	Long
	Double
)

var categoryNames = [...]string{
	Void:      "void",
	Boolean:   "boolean",
	Byte:      "byte",
	Char:      "char",
	Short:     "short",
	Int:       "int",
	Float:     "float",
	Reference: "reference",
	Long:      "long",
	Double:    "double",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "invalid"
	}
	return categoryNames[c]
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// CategoryOf returns the category of an encoded field type. Arrays and
// classes are references; "V" is void.
func CategoryOf(field string) (Category, bool) {
	if field == "" {
		return 0, false
	}
	switch field[0] {
	case 'L', '[':
		return Reference, true
	}
	if len(field) != 1 {
		return 0, false
	}
	for _, c := range []Category{Void, Boolean, Byte, Char, Short, Int, Float, Long, Double} {
		if c.Descriptor() == field {
			return c, true
		}
	}
	return 0, false
}

// Descriptor returns the descriptor letter; references use java/lang/Object.
func (c Category) Descriptor() string {
	switch c {
	case Void:
		return "V"
	case Boolean:
		return "Z"
	case Byte:
		return "B"
	case Char:
		return "C"
	case Short:
		return "S"
	case Int:
		return "I"
	case Float:
		return "F"
	case Long:
		return "J"
	case Double:
		return "D"
	}
	return "Ljava/lang/Object;"
}

// WidthOf maps a value category to its slot width.
func WidthOf(c Category) Width {
	switch c {
	case Void:
		return WidthZero
	case Long, Double:
		return WidthDouble
	}
	return WidthSingle
}
