package usecase

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "json fence",
			text: "Here is the result:\n```json\n{\"category\": \"class\"}\n```\nLet me know if you need more.",
			want: `{"category": "class"}`,
		},
		{
			name: "bare fence",
			text: "```\n{\"category\": \"meal\"}\n```",
			want: `{"category": "meal"}`,
		},
		{
			name: "no fence",
			text: "  {\"category\": \"study\"}  ",
			want: `{"category": "study"}`,
		},
		{
			name: "unterminated json fence",
			text: "```json\n{\"category\": \"other\"}",
			want: `{"category": "other"}`,
		},
		{
			name: "json fence wins over bare fence",
			text: "```\nnot this\n```\n```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "prose only",
			text: "I could not parse that task.",
			want: "I could not parse that task.",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.text); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
