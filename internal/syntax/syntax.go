// Package syntax describes the slice of a syntax tree the boundary pass
// consumes: statements with a source extent and conditional statements with
// a then-body and an optional else link.
package syntax

import (
	"iter"

	"ifbound.dev/pkg/ifbound/internal/source"
)

// Stmt is any statement with a source extent.
type Stmt interface {
	// Begin is the position of the first token of the statement.
	Begin() source.Pos
	// End is the position of the last token of the statement (its start,
	// not one past it).
	End() source.Pos
}

// ElseKind tells what follows a conditional's then-body.
type ElseKind int

const (
	// ElseNone means the conditional has no else link.
	ElseNone ElseKind = iota
	// ElseIf means the else link is another conditional.
	ElseIf
	// ElsePlain means the else link is a terminal statement.
	ElsePlain
)

// Else is the else link of a conditional.
type Else struct {
	Kind ElseKind
	If   Conditional // set for ElseIf
	Body Stmt        // set for ElsePlain
}

// NoElse is the else link of a conditional without one.
var NoElse = Else{Kind: ElseNone}

// ElseIfLink wraps a nested conditional as an else link.
func ElseIfLink(c Conditional) Else {
	if c == nil {
		return NoElse
	}

	return Else{Kind: ElseIf, If: c}
}

// PlainElseLink wraps a terminal statement as an else link.
func PlainElseLink(s Stmt) Else {
	if s == nil {
		return NoElse
	}

	return Else{Kind: ElsePlain, Body: s}
}

// Conditional is an if statement.
type Conditional interface {
	Stmt
	Then() Stmt
	Else() Else
}

//go:generate go tool stringer -type BranchKind -linecomment

// BranchKind is the role of a body within a conditional chain.
type BranchKind int

const (
	Then       BranchKind = iota // then
	ElseIfThen                   // else-if
	ElseBody                     // else
)

// Branch is one body of a conditional chain.
type Branch struct {
	Kind BranchKind
	Body Stmt
}

// Branches enumerates the bodies of the chain rooted at root in source
// order: the then-body, the then-body of every else-if link, and the
// trailing else-body if there is one.
func Branches(root Conditional) iter.Seq[Branch] {
	return func(yield func(Branch) bool) {
		if root == nil {
			return
		}

		if !yield(Branch{Kind: Then, Body: root.Then()}) {
			return
		}

		link := root.Else()
		for {
			switch link.Kind {
			case ElseIf:
				if !yield(Branch{Kind: ElseIfThen, Body: link.If.Then()}) {
					return
				}

				link = link.If.Else()

			case ElsePlain:
				yield(Branch{Kind: ElseBody, Body: link.Body})
				return

			default:
				return
			}
		}
	}
}

// Unit is one parsed input file as handed to the boundary pass.
type Unit struct {
	// MainFile is the path the input was read from.
	MainFile string
	// Sources resolves every position appearing in the tree.
	Sources *source.Manager
	// Conditionals yields the root of every conditional chain of the file in
	// traversal order, outer statements before the statements nested in
	// them. A conditional sitting in the else link of another one belongs to
	// that chain and is not yielded on its own.
	Conditionals iter.Seq[Conditional]
}
