package session_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"studiohub/pkg/session"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns PEM encoded private and public keys.
func genRSAKeys(tb testing.TB) (string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return string(privPEM), string(pubPEM)
}

func tenantSession(role domain.Role) *session.Session {
	tid := domain.TenantID(uuid.New())

	return &session.Session{UserID: domain.UserID(uuid.New()), TenantID: &tid, Role: role}
}

func TestRequire(t *testing.T) {
	cases := []struct {
		name     string
		sess     *session.Session
		required domain.Role
		err      error
		status   int
	}{
		{name: "no session", sess: nil, required: domain.RoleViewer,
			err: session.ErrUnauthorized, status: http.StatusUnauthorized},
		{name: "no tenant", sess: &session.Session{UserID: domain.UserID(uuid.New()), Role: domain.RoleOwner},
			required: domain.RoleViewer, err: session.ErrTenantRequired, status: http.StatusBadRequest},
		{name: "role too low", sess: tenantSession(domain.RoleViewer), required: domain.RoleEditor,
			err: session.ErrForbidden, status: http.StatusForbidden},
		{name: "unknown role", sess: tenantSession("intern"), required: domain.RoleViewer,
			err: session.ErrForbidden, status: http.StatusForbidden},
		{name: "exact role", sess: tenantSession(domain.RoleEditor), required: domain.RoleEditor},
		{name: "higher role", sess: tenantSession(domain.RoleOwner), required: domain.RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := session.Require(tc.sess, tc.required)
			if tc.err == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.status, serrors.HTTPStatus(err))
		})
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, session.FromContext(ctx))

	sess := tenantSession(domain.RoleAdmin)
	require.Same(t, sess, session.FromContext(session.WithSession(ctx, sess)))
}

func TestIssueAndVerify(t *testing.T) {
	privPEM, pubPEM := genRSAKeys(t)
	issuer, err := session.NewIssuer(privPEM)
	require.NoError(t, err)
	verifier, err := session.NewVerifier(pubPEM)
	require.NoError(t, err)

	sess := tenantSession(domain.RoleEditor)
	token, err := issuer.Issue(*sess, time.Hour, time.Now())
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, sess.UserID, got.UserID)
	require.Equal(t, *sess.TenantID, *got.TenantID)
	require.Equal(t, domain.RoleEditor, got.Role)

	unbound := session.Session{UserID: domain.UserID(uuid.New())}
	token, err = issuer.Issue(unbound, time.Hour, time.Now())
	require.NoError(t, err)
	got, err = verifier.Verify(token)
	require.NoError(t, err)
	require.Nil(t, got.TenantID)
	require.ErrorIs(t, session.Require(got, domain.RoleViewer), session.ErrTenantRequired)
}

func TestVerify_Rejects(t *testing.T) {
	privPEM, pubPEM := genRSAKeys(t)
	otherPrivPEM, _ := genRSAKeys(t)
	verifier, err := session.NewVerifier(pubPEM)
	require.NoError(t, err)

	issuer, err := session.NewIssuer(privPEM)
	require.NoError(t, err)
	other, err := session.NewIssuer(otherPrivPEM)
	require.NoError(t, err)

	sess := *tenantSession(domain.RoleOwner)

	expired, err := issuer.Issue(sess, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := other.Issue(sess, time.Hour, time.Now())
	require.NoError(t, err)
	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong key":    foreign,
		"wrong method": hs256,
		"garbage":      "not-a-token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}

	_, err = session.NewVerifier("not a key")
	require.Error(t, err)
}
