package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{`49.99`, 49.99, true},
		{`"49.99"`, 49.99, true},
		{`"0"`, 0, true},
		{`"abc"`, 0, false},
		{`true`, 0, false},
	}
	for _, tc := range cases {
		var n Number
		err := json.Unmarshal([]byte(tc.in), &n)
		if tc.ok != (err == nil) {
			t.Errorf("%s: unexpected error state: %v", tc.in, err)
			continue
		}
		if tc.ok && float64(n) != tc.want {
			t.Errorf("%s: got %v, want %v", tc.in, float64(n), tc.want)
		}
	}
}

func TestBooleanCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want bool
		ok   bool
	}{
		{`true`, true, true},
		{`false`, false, true},
		{`"true"`, true, true},
		{`"1"`, true, true},
		{`"0"`, false, true},
		{`"maybe"`, false, false},
		{`3`, false, false},
	}
	for _, tc := range cases {
		var b Boolean
		err := json.Unmarshal([]byte(tc.in), &b)
		if tc.ok != (err == nil) {
			t.Errorf("%s: unexpected error state: %v", tc.in, err)
			continue
		}
		if tc.ok && bool(b) != tc.want {
			t.Errorf("%s: got %v, want %v", tc.in, bool(b), tc.want)
		}
	}
}

func TestToIssuesCollectsEveryField(t *testing.T) {
	Init()

	type payload struct {
		Title string  `json:"title" binding:"required,min=3"`
		Price *Number `json:"price" binding:"required,gt=0"`
	}
	var p payload
	err := binding.JSON.BindBody([]byte(`{"title":"ab","price":0}`), &p)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	issues := ToIssues(err)
	got := map[string]string{}
	for _, is := range issues {
		got[is.Path] = is.Message
	}
	if _, ok := got["title"]; !ok {
		t.Errorf("missing title issue: %v", issues)
	}
	if _, ok := got["price"]; !ok {
		t.Errorf("missing price issue: %v", issues)
	}
}

func TestToIssuesInvalidJSON(t *testing.T) {
	Init()

	type payload struct {
		Title string `json:"title" binding:"required"`
	}
	var p payload
	err := binding.JSON.BindBody([]byte(`{"title":`), &p)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	issues := ToIssues(err)
	if len(issues) != 1 || issues[0].Path != "payload" {
		t.Fatalf("unexpected issues: %v", issues)
	}
}
