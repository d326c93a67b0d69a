// Package member describes callable members and the types that own them.
//
// The selector in package invoke consumes members only through the
// TypeDescription and MethodDescription interfaces, so any member model can
// back it. This package also provides a synthetic model:
//
//	base := member.NewType("app/Base")
//	impl := member.NewType("app/Impl", member.Extends(base))
//	m := member.NewMethod(base, "size", member.Returns(stack.Int))
//
// and a YAML loader for whole catalogs of types and methods, see LoadCatalog.
package member
