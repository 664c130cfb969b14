package jwt

import (
	"errors"
	"fmt"

	"trustrate-srv/pkg/scope"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken - the token failed signature or claim validation.
	ErrInvalidToken = errors.New("jwt: invalid token")
)

// Verify parses and validates tokenString and returns the caller scope.
// Implements scope.Manager.
func (m *Manager) Verify(tokenString string) (scope.Scope, error) {
	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(m.issuer),
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwtlib.WithAudience(m.audience[0]))
	}

	token, err := jwtlib.Parse(tokenString, func(t *jwtlib.Token) (interface{}, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return scope.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok || !token.Valid {
		return scope.Scope{}, ErrInvalidToken
	}

	sc := scope.Scope{}
	if sub, err := claims.GetSubject(); err == nil {
		sc.UserID = sub
	}
	if email, ok := claims[ClaimEmail].(string); ok {
		sc.Email = email
	}
	if role, ok := claims[ClaimRole].(string); ok {
		sc.Role = role
	}
	return sc, nil
}
