package jwt

import "time"

// this is the payload of the session token
// the subject is the user's object ID and we carry the admin flag
// so protected routes can authorize without an extra user lookup
type JWT struct {
	Issuer    string `bson:"iss" json:"iss"`
	Subject   string `bson:"sub" json:"sub"`
	Audience  string `bson:"aud" json:"aud"`
	IsAdmin   bool   `bson:"isAdmin" json:"isAdmin"`
	ExpiresAt int64  `bson:"exp" json:"exp"`
	IssuedAt  int64  `bson:"iat" json:"iat"`
	NotBefore int64  `bson:"nbf" json:"nbf"`
	JWTID     string `bson:"jti" json:"jti"`

	Token string `bson:"-" json:"-"`
}

var DEFAULT_ISSUER = "api.sahayatri.app"
var DEFAULT_EXPIRATION_TIME = 1 * time.Hour
var DEFAULT_AUDIENCE = "sahayatri.app"
