// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the tree representation of a parsed document: a
// tagged value that is an object, array, string, number, Boolean, or
// null. Objects and arrays own their children exclusively; a parsed
// tree has no cycles and no shared structure.
package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A Value is a single document value. The concrete type is Object,
// Array, String, Number, Bool, or the type of the Null constant.
type Value interface {
	// String returns a short debug label for the value.
	// It is not a serialization of the value.
	String() string
}

// An Object is a collection of key-value members, unique and ordered
// by key.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a type accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i, ok := o.search(key); ok {
		return o[i]
	}
	return nil
}

// Set inserts or replaces the member with the given key, keeping the
// members of o ordered by key, and returns the updated object. Setting
// a key already present overwrites its previous value.
func (o Object) Set(key string, v Value) Object {
	i, ok := o.search(key)
	if ok {
		o[i].Value = v
		return o
	}
	return slices.Insert(o, i, &Member{Key: key, Value: v})
}

func (o Object) search(key string) (int, bool) {
	return slices.BinarySearchFunc(o, key, func(m *Member, key string) int {
		return strings.Compare(m.Key, key)
	})
}

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is a sequence of values in source order.
type Array []Value

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value.
type String string

func (s String) String() string { return strconv.Quote(string(s)) }

// A Number is a 64-bit floating-point value.
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
var Null Value = null{}

type null struct{}

func (null) String() string { return "null" }
