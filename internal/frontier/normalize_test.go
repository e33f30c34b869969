package frontier

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty string", in: "", want: "/"},
		{name: "single char", in: "a", want: "a/"},
		{name: "already slashed", in: "a/", want: "a/"},
		{name: "lowercases everything", in: "HTTPS://YouTube.com/Random", want: "https://youtube.com/random/"},
		{name: "keeps query", in: "https://a.com/p?Q=1", want: "https://a.com/p?q=1/"},
		{name: "double slash kept", in: "https://a.com//", want: "https://a.com//"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	f := func(s string) bool {
		once := Normalize(s)
		return Normalize(once) == once
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInScope(t *testing.T) {
	root := "https://youtube.com/"
	tests := []struct {
		candidate string
		want      bool
	}{
		{"https://youtube.com/random", true},
		{"https://youtube.com/random/", true},
		{"HTTPS://YOUTUBE.COM/", true},
		{"https://youtube.com", true},
		{"https://facebook.com", false},
		{"https://www.youtube.com/random", false},
		{"http://youtube.com/random", false},
		{"https://evil.com/?u=https://youtube.com/", true},
	}
	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, InScope(tt.candidate, root))
		})
	}
}
