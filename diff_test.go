// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"testing"

	"github.com/creachadair/laxjson"
	"github.com/creachadair/laxjson/ast"
	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

// Inputs that are strictly valid JSON without escape sequences must
// parse to the same structure a conforming decoder produces.
func TestParseStandard(t *testing.T) {
	inputs := []string{
		`null`, `true`, `false`,
		`0`, `-12.5e3`, `0.625`,
		`""`, `"ok then"`,
		`[]`, `{}`,
		`[1,2,3]`,
		`{"a":{"b":[true,null]},"c":"d"}`,
		`{ "x" : [ { "y" : 0.25 } , "z" ] }`,
		`[[[]],[{}],""]`,
	}
	for _, input := range inputs {
		got, err := laxjson.Parse(input)
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", input, err)
			continue
		}
		var want any
		if err := json.Unmarshal([]byte(input), &want); err != nil {
			t.Fatalf("Unmarshal %#q: %v", input, err)
		}
		if diff := cmp.Diff(want, ast.Plain(got)); diff != "" {
			t.Errorf("Parse %#q: (-want, +got)\n%s", input, diff)
		}
	}
}

// Inputs whose only lenience is trailing commas are valid HuJSON;
// standardizing them before parsing must not change the result.
func TestParseRelaxed(t *testing.T) {
	inputs := []string{
		`[1, 2, 3,]`,
		`{"a": 1, "b": [true,],}`,
		`{"deep": {"x": [[],],},}`,
	}
	for _, input := range inputs {
		std, err := hujson.Standardize([]byte(input))
		if err != nil {
			t.Fatalf("Standardize %#q: %v", input, err)
		}
		direct, err := laxjson.Parse(input)
		if err != nil {
			t.Fatalf("Parse %#q: %v", input, err)
		}
		clean, err := laxjson.Parse(string(std))
		if err != nil {
			t.Fatalf("Parse %#q: %v", std, err)
		}
		if diff := cmp.Diff(clean, direct); diff != "" {
			t.Errorf("Parse %#q: (-standardized, +direct)\n%s", input, diff)
		}
	}
}
