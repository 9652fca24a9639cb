// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package internal holds iterator helpers shared by the listing emitter.
package internal

import (
	"iter"
)

// Concat concatenates sequences into a single sequence.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Each flattens the sequences produced by each element of a slice.
func Each[E any, T any](elems []E, seq func(E) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range elems {
			for val := range seq(elem) {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Of is a sequence of the given values.
func Of[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range vals {
			if !yield(val) {
				return
			}
		}
	}
}
