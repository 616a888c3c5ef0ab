package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/embalse/deposito-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "ENCARGADO", "depot-1", "deposito-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, depotID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ENCARGADO", role)
	assert.Equal(t, "depot-1", depotID)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "ADMIN", "", "deposito-api-test", 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "OPERARIO", "", "deposito-api-test", -1)
	require.NoError(t, err)

	// Margen para que la expiración negativa ya haya pasado
	time.Sleep(10 * time.Millisecond)
	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "ADMIN", "", "iss", 60)
	assert.Error(t, err)
}
