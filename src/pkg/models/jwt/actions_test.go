package jwt

import (
	"testing"
	"time"

	"api.sahayatri.app/src/pkg/global"
	"api.sahayatri.app/src/pkg/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndValidate(t *testing.T) {
	test.SetupMockEnv()

	userID := primitive.NewObjectID()
	token, err := CreateJWT(userID, false)
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	valid, parsed := ValidateJWT(token)
	assert.True(t, valid)
	assert.Equal(t, userID.Hex(), parsed.Subject)
	assert.False(t, parsed.IsAdmin)
	assert.Equal(t, DEFAULT_ISSUER, parsed.Issuer)
	assert.NotEmpty(t, parsed.JWTID)
}

func TestAdminClaim(t *testing.T) {
	test.SetupMockEnv()

	token, err := CreateJWT(primitive.NewObjectID(), true)
	assert.Nil(t, err)

	valid, parsed := ValidateJWT(token)
	assert.True(t, valid)
	assert.True(t, parsed.IsAdmin)
}

func TestOneHourExpiry(t *testing.T) {
	test.SetupMockEnv()

	before := time.Now().Add(DEFAULT_EXPIRATION_TIME).Unix()
	token, err := CreateJWT(primitive.NewObjectID(), false)
	assert.Nil(t, err)
	after := time.Now().Add(DEFAULT_EXPIRATION_TIME).Unix()

	valid, parsed := ValidateJWT(token)
	assert.True(t, valid)
	assert.GreaterOrEqual(t, parsed.ExpiresAt, before)
	assert.LessOrEqual(t, parsed.ExpiresAt, after)
}

func TestTamperedTokenRejected(t *testing.T) {
	test.SetupMockEnv()

	token, err := CreateJWT(primitive.NewObjectID(), false)
	assert.Nil(t, err)

	valid, _ := ValidateJWT(token + "x")
	assert.False(t, valid)
}

func TestWrongKeyRejected(t *testing.T) {
	test.SetupMockEnv()

	token, err := CreateJWT(primitive.NewObjectID(), false)
	assert.Nil(t, err)

	global.JWT_SIGNING_KEY = "a-different-key"
	valid, _ := ValidateJWT(token)
	assert.False(t, valid)

	global.JWT_SIGNING_KEY = "test-signing-key"
	valid, _ = ValidateJWT(token)
	assert.True(t, valid)
}
