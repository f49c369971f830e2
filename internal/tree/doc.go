// Package tree is the hierarchical-code tree engine.
//
// Every node carries a dotted positional code ("1.2.3") derived from its
// place among its siblings and ancestors; the root is "1". The functions in
// this package never modify the tree they are given. Mutations return a new
// root that shares every untouched subtree with the old one, so a caller can
// keep the previous value if it chooses not to adopt the result.
package tree
