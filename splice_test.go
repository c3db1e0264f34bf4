package minify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minify "gitlab.com/infor-cloud/martian-cloud/tharsis/graphql-minify"
)

func TestJoinFragmentsRejectsMismatchedLengths(t *testing.T) {
	_, err := minify.JoinFragments([]string{"a", "b"}, []string{"x", "y"})
	require.Error(t, err)
}

func TestJoinFragments(t *testing.T) {
	tests := []struct {
		description  string
		fragments    []string
		placeholders []string
		want         string
	}{
		{
			description:  "no placeholders passes the single fragment through",
			fragments:    []string{"query{a}"},
			placeholders: nil,
			want:         "query{a}",
		},
		{
			description:  "identifier-adjacent placeholder gets a space on both sides",
			fragments:    []string{"field", "rest"},
			placeholders: []string{"$x"},
			want:         "field $x rest",
		},
		{
			description:  "punctuator-adjacent placeholder needs no space",
			fragments:    []string{"{", "}"},
			placeholders: []string{"$x"},
			want:         "{$x}",
		},
		{
			description:  "empty trailing fragment suppresses its leading space",
			fragments:    []string{"a", ""},
			placeholders: []string{"$x"},
			want:         "a $x",
		},
		{
			description:  "empty leading fragment suppresses its trailing space",
			fragments:    []string{"", "b"},
			placeholders: []string{"$x"},
			want:         "$x b",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			got, err := minify.JoinFragments(test.fragments, test.placeholders)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
