// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ir

import (
	"iter"
)

// attacher is implemented by nodes that may have only one parent.
type attacher interface {
	attach()
}

// Block is an ordered sequence of owned nodes.
type Block struct {
	nodes    []Node
	attached bool
	sealed   bool
}

func (blk *Block) attach() {
	if blk.attached {
		panic("ir: block already has a parent")
	}
	blk.attached = true
}

// Add appends nodes to the block, taking ownership of them.
func (blk *Block) Add(nodes ...Node) {
	if blk.sealed {
		panic("ir: add to sealed block")
	}
	for _, node := range nodes {
		if at, ok := node.(attacher); ok {
			at.attach()
		}
		blk.nodes = append(blk.nodes, node)
	}
}

// Len is the number of direct children.
func (blk *Block) Len() int {
	return len(blk.nodes)
}

// Nodes iterates over the direct children.
func (blk *Block) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, node := range blk.nodes {
			if !yield(node) {
				return
			}
		}
	}
}

// Seal makes the block and all of its descendants immutable.
func (blk *Block) Seal() {
	blk.sealed = true
	for _, node := range blk.nodes {
		if sub, ok := node.(interface{ Seal() }); ok {
			sub.Seal()
		}
	}
}

func (blk *Block) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, node := range blk.nodes {
			for line := range node.Lines() {
				if !yield(line) {
					return
				}
			}
		}
	}
}
