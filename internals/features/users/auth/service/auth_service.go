package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"travelku_backend/internals/configs"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidGoogleToken = errors.New("invalid google id token")

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// GenerateTokens issues the HS256 access/refresh pair carrying user_id and
// user_role claims.
func GenerateTokens(userID uuid.UUID, role string) (accessToken, refreshToken string, err error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   userID.String(),
		"user_role": role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	})
	accessToken, err = access.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	})
	refreshToken, err = refresh.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// GoogleClaims is what we keep from a verified Google ID token.
type GoogleClaims struct {
	GoogleID string
	Email    string
	Name     string
}

// VerifyGoogleIDToken checks the token signature and audience against our
// client id, then decodes the claims we care about.
func VerifyGoogleIDToken(idToken string) (GoogleClaims, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return GoogleClaims{}, ErrInvalidGoogleToken
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return GoogleClaims{}, ErrInvalidGoogleToken
	}
	return GoogleClaims{
		GoogleID: claimSet.Sub,
		Email:    claimSet.Email,
		Name:     claimSet.Name,
	}, nil
}

// RandomPassword fills the password column for Google-created accounts so the
// not-null constraint holds; it is never usable for password login.
func RandomPassword() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return HashPassword(hex.EncodeToString(buf))
}
