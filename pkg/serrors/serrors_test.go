package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"studiohub/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrTenantRequired,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "gallery %s not found", "MYST1234")
	require.Equal(t, "gallery MYST1234 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "loading gallery")
	require.Equal(t, "loading gallery: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrConflict, "dupe"))))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{serrors.With(serrors.ErrBadRequest, "bad slug"), http.StatusBadRequest},
		{serrors.KindOnly(serrors.ErrNotFound), http.StatusNotFound},
		{serrors.KindOnly(serrors.ErrUnauthorized), http.StatusUnauthorized},
		{serrors.KindOnly(serrors.ErrTenantRequired), http.StatusBadRequest},
		{serrors.KindOnly(serrors.ErrForbidden), http.StatusForbidden},
		{serrors.KindOnly(serrors.ErrConflict), http.StatusConflict},
		{serrors.KindOnly(serrors.ErrRateLimited), http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, serrors.HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestSessionFailuresAreDistinguishable(t *testing.T) {
	codes := map[string]bool{}
	statuses := map[int]bool{}
	for _, k := range []serrors.Kind{serrors.ErrUnauthorized, serrors.ErrTenantRequired, serrors.ErrForbidden} {
		codes[k.Error()] = true
		statuses[serrors.HTTPStatus(serrors.KindOnly(k))] = true
	}
	require.Len(t, codes, 3)
	require.Len(t, statuses, 3)
}
