package tokenpkg

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-petr/pet-invest/pkg/randompkg"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func TestNewJWTMaker(t *testing.T) {
	t.Parallel()

	secretKey := strings.Repeat("x", 32)

	_, err := NewJWTMaker(secretKey)
	if err != nil {
		t.Errorf("NewJWTMaker(%v) returned error: %v", secretKey, err)
	}

	shortKey := strings.Repeat("x", 30)

	got, err := NewJWTMaker(shortKey)
	if err == nil {
		t.Fatalf("NewJWTMaker(%v) returned nil error, want error", shortKey)
	}

	if err.Error() != fmt.Errorf("invalid key size: must be at least %d characters", minSecretKeySize).Error() {
		t.Errorf("NewJWTMaker(%v) returned unexpected error: %v", shortKey, err)
	}

	if got != nil {
		t.Errorf("JWTMaker = %+v, want nil", got)
	}
}

func TestJWTMaker(t *testing.T) {
	t.Parallel()

	secretKey := randompkg.String(32)

	maker, err := NewJWTMaker(secretKey)
	if err != nil {
		t.Fatalf("NewJWTMaker(%v) returned error: %v", secretKey, err)
	}

	userID := uuid.New()
	duration := time.Minute

	token, payload, err := maker.CreateToken(userID, duration)
	if err != nil {
		t.Fatalf("maker.CreateToken(%v, %v) returned error: %v", userID, duration, err)
	}

	verified, err := maker.VerifyToken(token)
	if err != nil {
		t.Fatalf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	want := &Payload{
		UserID:    userID,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	ignore := cmpopts.IgnoreFields(Payload{}, "ID")
	delta := cmpopts.EquateApproxTime(time.Second)

	if diff := cmp.Diff(want, payload, ignore, delta); diff != "" {
		t.Errorf("maker.CreateToken(%v, %v) returned unexpected diff: %v", userID, duration, diff)
	}

	if verified.ID != payload.ID {
		t.Errorf("verified.ID = %v, want %v", verified.ID, payload.ID)
	}
}

func TestExpiredJWTToken(t *testing.T) {
	t.Parallel()

	maker, err := NewJWTMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("NewJWTMaker returned error: %v", err)
	}

	userID := uuid.New()
	duration := -time.Minute

	token, _, err := maker.CreateToken(userID, duration)
	if err != nil {
		t.Fatalf("maker.CreateToken(%v, %v) returned error: %v", userID, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != ErrExpiredToken {
		t.Errorf("maker.VerifyToken(%v) returned unexpected error: %v", token, err)
	}
}

func TestInvalidJWTTokenAlgNone(t *testing.T) {
	t.Parallel()

	payload, err := NewPayload(uuid.New(), time.Minute)
	if err != nil {
		t.Fatalf("NewPayload returned error: %v", err)
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodNone, payload)

	token, err := jwtToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("jwtToken.SignedString(%v) returned error: %v", jwt.UnsafeAllowNoneSignatureType, err)
	}

	maker, err := NewJWTMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("NewJWTMaker returned error: %v", err)
	}

	_, err = maker.VerifyToken(token)
	if err != ErrInvalidToken {
		t.Errorf("maker.VerifyToken(%v) returned error: %v, want %v", token, err, ErrInvalidToken)
	}
}
