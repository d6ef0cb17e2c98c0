package domain

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	// GalleryCodeMaxLen bounds generated and client supplied codes.
	GalleryCodeMaxLen = 12
	// GalleryCodePrefixLen is how much of the tenant slug leads a generated code.
	GalleryCodePrefixLen = 4
	// galleryCodeSuffixLen random characters are appended to the prefix.
	galleryCodeSuffixLen = 4

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

// GalleryCode is the short token a client types to open a gallery.
type GalleryCode string

// NewGalleryCode trims and uppercases raw and validates the result.
func NewGalleryCode(raw string) (GalleryCode, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrGalleryCodeEmpty
	}
	if !codePattern.MatchString(s) {
		return "", ErrGalleryCodeInvalidFormat
	}

	return GalleryCode(s), nil
}

// GenerateGalleryCode appends four random characters to the uppercased prefix
// and cuts the result at GalleryCodeMaxLen. A prefix of eight or more
// characters therefore eats into, or entirely replaces, the random part.
// Uniqueness is the caller's problem.
func GenerateGalleryCode(prefix string) GalleryCode {
	code := strings.ToUpper(prefix) + randomString(galleryCodeSuffixLen)
	if len(code) > GalleryCodeMaxLen {
		code = code[:GalleryCodeMaxLen]
	}

	return GalleryCode(code)
}

// GalleryCodePrefix derives the code prefix for a tenant: the slug's letters
// and digits, uppercased, at most GalleryCodePrefixLen of them.
func GalleryCodePrefix(slug TenantSlug) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(string(slug)) {
		if b.Len() == GalleryCodePrefixLen {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func (c GalleryCode) String() string { return string(c) }

func randomString(n int) string {
	max := big.NewInt(int64(len(codeAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		b[i] = codeAlphabet[idx.Int64()]
	}

	return string(b)
}
