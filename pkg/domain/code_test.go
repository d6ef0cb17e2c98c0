package domain_test

import (
	"regexp"
	"strings"
	"studiohub/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGalleryCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  domain.GalleryCode
		err  error
	}{
		{name: "already normalized", in: "MYST1234", out: "MYST1234"},
		{name: "lowercase is uppercased", in: "myst1234", out: "MYST1234"},
		{name: "surrounding whitespace is trimmed", in: "  ab12  ", out: "AB12"},
		{name: "twelve characters", in: "abcdefghijkl", out: "ABCDEFGHIJKL"},
		{name: "blank", in: "   ", err: domain.ErrGalleryCodeEmpty},
		{name: "empty", in: "", err: domain.ErrGalleryCodeEmpty},
		{name: "too short", in: "abc", err: domain.ErrGalleryCodeInvalidFormat},
		{name: "too long", in: "abcdefghijklm", err: domain.ErrGalleryCodeInvalidFormat},
		{name: "hyphen", in: "ab-12", err: domain.ErrGalleryCodeInvalidFormat},
		{name: "inner space", in: "ab 12", err: domain.ErrGalleryCodeInvalidFormat},
		{name: "non ascii letter", in: "ÄBCD", err: domain.ErrGalleryCodeInvalidFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.NewGalleryCode(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
			require.Equal(t, strings.ToUpper(strings.TrimSpace(tc.in)), got.String())
		})
	}
}

func TestGenerateGalleryCode(t *testing.T) {
	valid := regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

	for _, prefix := range []string{"", "a", "myst", "abcdefg", "abcdefgh", "abcdefghijklmnop"} {
		t.Run(prefix, func(t *testing.T) {
			for range 50 {
				code := domain.GenerateGalleryCode(prefix)
				require.LessOrEqual(t, len(code), domain.GalleryCodeMaxLen)
				require.Regexp(t, valid, code.String())

				want := strings.ToUpper(prefix)
				if len(want) > domain.GalleryCodeMaxLen {
					want = want[:domain.GalleryCodeMaxLen]
				}
				require.True(t, strings.HasPrefix(code.String(), want))

				_, err := domain.NewGalleryCode(code.String())
				require.NoError(t, err)
			}
		})
	}
}

func TestGalleryCodePrefix(t *testing.T) {
	require.Equal(t, "MYST", domain.GalleryCodePrefix("mystudio"))
	require.Equal(t, "ABCD", domain.GalleryCodePrefix("a-b-c-d-e"))
	require.Equal(t, "JO1", domain.GalleryCodePrefix("jo1"))
}
