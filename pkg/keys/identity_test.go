package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/ckbridge-starter/pkg/config"
)

const anonymousPrincipal = "2vxsx-fae"

func writeEd25519PEM(t *testing.T) string {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "identity.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadIdentity_Anonymous(t *testing.T) {
	id, err := LoadIdentity(config.IdentityConfig{})
	require.NoError(t, err)
	assert.Equal(t, anonymousPrincipal, id.Sender().String())
}

func TestLoadIdentity_Ed25519(t *testing.T) {
	id, err := LoadIdentity(config.IdentityConfig{PEMFile: writeEd25519PEM(t), KeyType: KeyTypeEd25519})
	require.NoError(t, err)
	assert.NotEqual(t, anonymousPrincipal, id.Sender().String())
}

func TestLoadIdentity_Errors(t *testing.T) {
	_, err := LoadIdentity(config.IdentityConfig{PEMFile: filepath.Join(t.TempDir(), "missing.pem")})
	assert.Error(t, err)

	_, err = ParseIdentity(KeyTypeEd25519, []byte("not pem"))
	assert.Error(t, err)

	_, err = ParseIdentity("rsa", []byte("irrelevant"))
	assert.Error(t, err)
}
