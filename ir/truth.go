package ir

// Truth reports whether node holds a "true" value: a true Bool, a non-zero
// number, a non-empty string, map or array. Empty and nil are false.
func Truth(node *Node) bool {
	switch node.Type() {
	case MapType:
		return node.m.Len() != 0
	case ArrayType:
		return node.a.Len() != 0
	case StringType:
		return node.s != ""
	case IntegerType:
		return node.i != 0
	case DoubleType:
		return node.f != 0.0
	case BoolType:
		return node.b
	case EmptyType:
		return false
	default:
		panic("type")
	}
}
