// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"fmt"
	"log"

	"github.com/creachadair/laxjson"
	"github.com/creachadair/laxjson/ast"
)

func ExampleParse() {
	// Quotation marks, colons, commas, and closing delimiters are all
	// optional where the structure is clear without them.
	v, err := laxjson.Parse(`{count: 25, tags: ["x" "y"], ok: yes`)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}

	obj := v.(ast.Object)
	fmt.Println(obj.Find("count").Value)
	fmt.Println(obj.Find("ok").Value)
	fmt.Println(obj.Find("tags").Value.(ast.Array).Len())
	// Output:
	// 25
	// "yes"
	// 2
}

func ExampleParser_SetMaxDepth() {
	p := laxjson.NewParser("[[[[[[1]]]]]]")
	p.SetMaxDepth(3)

	_, err := p.Parse()
	fmt.Println(err)
	// Output:
	// nesting too deep
}
