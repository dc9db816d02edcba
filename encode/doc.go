// Package encode renders configuration trees as indented text.
//
// The rendering is deterministic and meant for people: it resembles JSON but
// is not guaranteed to parse as JSON (doubles may render as NaN or +Inf, and
// Empty values render as nothing).
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	text := encode.PrettyPrint(node)
//
//	// Encode to a writer with colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/zconf/ir - the configuration tree
package encode
