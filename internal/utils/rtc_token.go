package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrRTCNotConfigured = errors.New("video provider credentials are not configured")

// RTCClaims scope a call credential to one channel, participant and role.
type RTCClaims struct {
	Channel string `json:"channel"`
	UID     string `json:"uid"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// BuildRTCToken mints a signed, time-limited credential for joining a video
// channel. The token is signed with the provider app certificate and carries
// the app ID as issuer.
func BuildRTCToken(appID, appCert, channel, uid, role string, expireIn time.Duration) (string, error) {
	if appID == "" || appCert == "" {
		return "", ErrRTCNotConfigured
	}
	if channel == "" || uid == "" {
		return "", errors.New("channel and uid are required")
	}

	now := time.Now()
	claims := RTCClaims{
		Channel: channel,
		UID:     uid,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    appID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expireIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(appCert))
}

// ParseRTCToken validates a minted credential. Used by tests and by the
// recording endpoints to sanity check tokens handed back by clients.
func ParseRTCToken(tokenString, appCert string) (*RTCClaims, error) {
	claims := &RTCClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(appCert), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
