package host

import (
	"errors"
	"fmt"
)

// ErrNotChild is returned when removing a node that is not attached to the element
var ErrNotChild = errors.New("node is not a child of this element")

// Node is anything that can be attached under an Element
type Node interface {
	NodeName() string
}

// Element is a container box that owns an ordered list of child nodes
type Element struct {
	id       string
	children []Node
}

// NewElement creates an empty container
func NewElement(id string) *Element {
	return &Element{id: id}
}

func (e *Element) NodeName() string {
	return e.id
}

// AppendChild attaches n as the last child, moving it if already attached
func (e *Element) AppendChild(n Node) {
	e.remove(n)
	e.children = append(e.children, n)
}

// RemoveChild detaches n, ErrNotChild if it is not attached here
func (e *Element) RemoveChild(n Node) error {
	if !e.remove(n) {
		return fmt.Errorf("remove %s from %s: %w", n.NodeName(), e.id, ErrNotChild)
	}
	return nil
}

// Contains reports whether n is a direct child
func (e *Element) Contains(n Node) bool {
	for _, c := range e.children {
		if c == n {
			return true
		}
	}
	return false
}

// Children returns a copy of the child list
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

func (e *Element) remove(n Node) bool {
	for i, c := range e.children {
		if c == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return true
		}
	}
	return false
}
