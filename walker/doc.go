// Package walker traverses a document object graph depth-first and hands
// every node to a visitor together with its object path.
//
// Paths use the same form as required-field validation, for example
//
//	SCSContext.SubjectOfCare.Participant.Entitlements[0].ID
//
// Embedded structs add no path segment. XMLName fields and leaves that
// marshal themselves as text (dates, decimals, UUIDs) are not descended
// into.
//
// Phases use the walker to find values of a given kind anywhere in a
// document without knowing its type:
//
//	walker.Walk(ctx, doc, func(n *walker.Node) error {
//		if id, ok := n.Value.(*model.Identifier); ok {
//			check(n.Path, id)
//		}
//		return nil
//	})
package walker
