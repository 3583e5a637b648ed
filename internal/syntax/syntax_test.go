package syntax

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"ifbound.dev/pkg/ifbound/internal/source"
)

type block struct{ from, to source.Pos }

func (b block) Begin() source.Pos { return b.from }
func (b block) End() source.Pos   { return b.to }

type ifNode struct {
	block
	then Stmt
	els  Else
}

func (n ifNode) Then() Stmt { return n.then }
func (n ifNode) Else() Else { return n.els }

func kinds(c Conditional) []BranchKind {
	var out []BranchKind
	for b := range Branches(c) {
		out = append(out, b.Kind)
	}

	return out
}

func TestBranches(t *testing.T) {
	thenA := block{1, 2}
	thenB := block{3, 4}
	thenC := block{5, 6}
	tail := block{7, 8}

	tests := []struct {
		name string
		root Conditional
		want []BranchKind
	}{
		{"nil root", nil, nil},
		{"if only", ifNode{then: thenA, els: NoElse}, []BranchKind{Then}},
		{"if else", ifNode{then: thenA, els: PlainElseLink(tail)}, []BranchKind{Then, ElseBody}},
		{
			"else-if chain with else",
			ifNode{then: thenA, els: ElseIfLink(ifNode{then: thenB, els: ElseIfLink(ifNode{then: thenC, els: PlainElseLink(tail)})})},
			[]BranchKind{Then, ElseIfThen, ElseIfThen, ElseBody},
		},
		{
			"else-if chain without else",
			ifNode{then: thenA, els: ElseIfLink(ifNode{then: thenB, els: NoElse})},
			[]BranchKind{Then, ElseIfThen},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(tt.root))
		})
	}
}

func TestBranches_Bodies(t *testing.T) {
	thenA := block{1, 2}
	thenB := block{3, 4}
	tail := block{7, 8}
	root := ifNode{then: thenA, els: ElseIfLink(ifNode{then: thenB, els: PlainElseLink(tail)})}

	var bodies []Stmt
	for b := range Branches(root) {
		bodies = append(bodies, b.Body)
	}

	assert.Equal(t, []Stmt{thenA, thenB, tail}, bodies)
}

func TestBranches_StopEarly(t *testing.T) {
	root := ifNode{then: block{1, 2}, els: ElseIfLink(ifNode{then: block{3, 4}, els: PlainElseLink(block{5, 6})})}

	seen := 0
	for range Branches(root) {
		seen++
		break
	}

	assert.Equal(t, 1, seen)
	assert.Len(t, slices.Collect(Branches(root)), 3)
}

func TestElseLinks_Nil(t *testing.T) {
	assert.Equal(t, NoElse, ElseIfLink(nil))
	assert.Equal(t, NoElse, PlainElseLink(nil))
}

func TestBranchKind_String(t *testing.T) {
	assert.Equal(t, "then", Then.String())
	assert.Equal(t, "else-if", ElseIfThen.String())
	assert.Equal(t, "else", ElseBody.String())
	assert.Equal(t, "BranchKind(9)", BranchKind(9).String())
}
