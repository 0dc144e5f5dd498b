package extract

import "testing"

func TestExtractJSONContent(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"scenes":[]}`, `{"scenes":[]}`},
		{"fenced", "```json\n{\"scenes\":[]}\n```", `{"scenes":[]}`},
		{"fenced no lang", "```\n{\"scenes\":[]}\n```", `{"scenes":[]}`},
		{"surrounding prose kept away", "Here you go:\n```json\n{\"scenes\":[]}\n```\nEnjoy!", `{"scenes":[]}`},
		{"ragged suffix", "{\"scenes\":[]}\n```", `{"scenes":[]}`},
		{"ragged prefix", "```json\n{\"scenes\":[]}", `{"scenes":[]}`},
		{"missing closing brace", `{"scenes":[{"scene_number":1}]`, `{"scenes":[{"scene_number":1}]}`},
		{"excess closing braces", `{"scenes":[]}}}`, `{"scenes":[]}`},
		{"whitespace", "  \n{\"scenes\":[]}\n  ", `{"scenes":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONContent(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
