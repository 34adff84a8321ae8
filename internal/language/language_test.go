package language

import (
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		listing string
		dialect string
	}{
		{"cpp", ModeAnnotated, "", DialectCPP},
		{"h", ModeAnnotated, "", DialectCPP},
		{"HPP", ModeAnnotated, "", DialectCPP},
		{"java", ModeAnnotated, "Java", DialectJava},
		{"ps", ModeRaw, "raw", ""},
		{"raw", ModeRaw, "raw", ""},
		{"rawcpp", ModeRaw, "C++", ""},
		{"sh", ModeRaw, "bash", ""},
		{" py ", ModeRaw, "Python", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Lookup(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.mode, spec.Mode)
			require.Equal(t, tt.listing, spec.ListingLanguage)
			require.Equal(t, tt.dialect, spec.HashDialect)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("rs")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown language: rs")
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestFromPath(t *testing.T) {
	require.Equal(t, "cpp", FromPath("content/data-structures/FenwickTree.cpp"))
	require.Equal(t, "sh", FromPath("../v1.0/hash.sh"))
	require.Equal(t, "Makefile", FromPath("Makefile"))
}

func TestCaptionFromPath(t *testing.T) {
	require.Equal(t, "FenwickTree.cpp", CaptionFromPath("content/data-structures/FenwickTree.cpp"))
	require.Equal(t, "hash.sh", CaptionFromPath("hash.sh"))
}
