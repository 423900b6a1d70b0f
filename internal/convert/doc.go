// Package convert builds a unit registry and conversion graph from a
// configuration and answers conversion requests against them.
//
// Construction order is fixed: units in file order, then scale entries, then
// offset entries, then generated inverse edges. A generated inverse is only
// added when the reverse pair has no edge yet, so configured edges always
// take precedence.
//
// A Converter is immutable once New returns. A changed configuration means a
// new Converter, never an edit of an existing one.
package convert
