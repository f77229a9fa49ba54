// Package tree flattens hierarchical records into a single ordered list.
//
// Flattening is depth first and children are emitted before their parent:
//
//	a
//	├── b
//	│   └── c
//	└── d
//
// flattens to c, b, d, a. Siblings keep their input order.
//
// Two representations are supported. Node is a typed tree with an explicit
// Children slice and is flattened with Flatten. Untyped records, usually
// decoded from JSON or YAML, are flattened with FlattenMaps, which looks up
// children under a configurable key (children_list by default) and drops that
// key from the emitted records:
//
//	flat := tree.FlattenMaps(
//	    tree.WithData(records),
//	    tree.WithChildrenKey("children"),
//	)
//
// ParseYAML loads such records from a YAML or JSON document and Decode turns
// flattened records into structs.
//
// Cyclic input is not detected and recurses until the stack is exhausted.
package tree
