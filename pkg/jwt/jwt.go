package jwt

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims son los claims del session token que el admin de la plataforma emite para la app embebida.
// Dest identifica la tienda (tenant); Subject es el usuario del staff.
type SessionClaims struct {
	jwt.RegisteredClaims
	Dest string `json:"dest"`
	SID  string `json:"sid,omitempty"`
}

// Shop devuelve el dominio de la tienda contenido en Dest (ej. "demo.myshopify.com").
func (c *SessionClaims) Shop() string {
	u, err := url.Parse(c.Dest)
	if err != nil || u.Host == "" {
		return strings.TrimPrefix(strings.TrimPrefix(c.Dest, "https://"), "http://")
	}
	return u.Host
}

// Generate firma un session token HS256 para la tienda y usuario indicados.
// Lo usa la plataforma en producción; aquí sirve para tests y herramientas locales.
func Generate(secret, apiKey, shop, userID string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + shop + "/admin",
			Subject:   userID,
			Audience:  jwt.ClaimStrings{apiKey},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
			ID:        uuid.NewString(),
		},
		Dest: "https://" + shop,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, audiencia y vigencia del session token y devuelve sus claims.
// Retorna error si el token es inválido, expirado, de otra app o sin tienda destino.
func Parse(secret, apiKey, tokenString string) (*SessionClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5 * time.Second),
		jwt.WithExpirationRequired(),
	}
	if apiKey != "" {
		opts = append(opts, jwt.WithAudience(apiKey))
	}
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.Dest == "" || claims.Shop() == "" {
		return nil, fmt.Errorf("jwt: claim dest vacío")
	}
	return claims, nil
}
