package tokenpkg

import (
	"testing"
	"time"

	"github.com/go-petr/pet-invest/pkg/randompkg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewMaker(t *testing.T) {
	key := randompkg.String(32)

	testCases := []struct {
		name      string
		tokenType string
		key       string
		wantType  Maker
		wantErr   bool
	}{
		{name: "Default", tokenType: "", key: key, wantType: &PasetoMaker{}},
		{name: "Paseto", tokenType: "paseto", key: key, wantType: &PasetoMaker{}},
		{name: "JWT", tokenType: "jwt", key: key, wantType: &JWTMaker{}},
		{name: "Unsupported", tokenType: "macaroon", key: key, wantErr: true},
		{name: "ShortKey", tokenType: "jwt", key: "short", wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			maker, err := NewMaker(tc.tokenType, tc.key)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.IsType(t, tc.wantType, maker)

			userID := uuid.New()

			token, _, err := maker.CreateToken(userID, time.Minute)
			require.NoError(t, err)

			payload, err := maker.VerifyToken(token)
			require.NoError(t, err)
			require.Equal(t, userID, payload.UserID)
		})
	}
}
