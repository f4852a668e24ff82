package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stock-count-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testAPIKey = "api-key-123"
	testShop   = "demo-store.myshopify.com"
	testUserID = "42"
)

func TestGenerateAndParse_ExtraeTiendaYUsuario(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAPIKey, testShop, testUserID, 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, testAPIKey, tok)
	require.NoError(t, err)
	assert.Equal(t, testShop, claims.Shop())
	assert.Equal(t, testUserID, claims.Subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAPIKey, testShop, testUserID, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testAPIKey, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testAPIKey, testShop, testUserID, 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", testAPIKey, tok)
	assert.Error(t, err)
}

func TestParse_AudienciaDeOtraApp(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "otra-app", testShop, testUserID, 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testAPIKey, tok)
	assert.Error(t, err, "un token emitido para otra app no debe aceptarse")
}

func TestParse_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testAPIKey, testShop, testUserID, 5)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", testAPIKey, "x.y.z")
	assert.Error(t, err)
}
