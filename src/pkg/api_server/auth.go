package api_server

import (
	"net/http"

	"api.sahayatri.app/src/pkg/models/jwt"
	"api.sahayatri.app/src/pkg/models/user"
	"api.sahayatri.app/src/pkg/services/password"
	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserIDKey  = "userID"
	TokenKey   = "token"
	IsAdminKey = "isAdmin"
)

// requests per second per client on the auth routes
var AUTH_RATE_LIMIT = float64(5)

func RegisterAuthRoutes(r *gin.Engine) {
	// brute-force on top of the account lockout is throttled per client
	lmt := tollbooth.NewLimiter(AUTH_RATE_LIMIT, nil)

	r.POST("/register", RateLimitMiddleware(lmt), RegisterUser)
	r.POST("/login", RateLimitMiddleware(lmt), LoginUser)
	r.POST("/password_strength", PasswordStrength)
}

// PasswordStrength backs the live strength meter on the registration form.
// Advisory only, registration enforces the full complexity policy.
func PasswordStrength(c *gin.Context) {
	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please enter all fields."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"strength": password.AssessStrength(body.Password),
	})
}

func RegisterUser(c *gin.Context) {
	var reg user.UserRegister
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please enter all fields."})
		return
	}

	if ok, reason := password.ValidateComplexity(reg.Password); !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": reason})
		return
	}

	_, err := user.CreateUser(&reg)
	if err == user.ErrUserExists {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "User already exists."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created successfully."})
}

func LoginUser(c *gin.Context) {
	var auth user.UserAuth
	if err := c.ShouldBindJSON(&auth); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please enter all fields."})
		return
	}

	result, err := user.Authenticate(&auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		return
	}

	if !result.Success {
		response := gin.H{"success": false, "message": result.Message}
		if result.RemainingAttempts != nil {
			response["remainingAttempts"] = *result.RemainingAttempts
		}
		if result.LockUntil != nil {
			response["lockUntil"] = result.LockUntil
		}
		c.JSON(http.StatusOK, response)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"token":           result.Token,
		"userData":        result.User,
		"passwordExpired": result.PasswordExpired,
	})
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			c.Abort()
			return
		}

		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := authHeader[7:]

		valid, jwtToken := jwt.ValidateJWT(token)
		if !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(jwtToken.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token subject is not a valid object ID"})
			c.Abort()
			return
		}

		if user.GetUserByID(userID) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, token)
		c.Set(IsAdminKey, jwtToken.IsAdmin)

		c.Next()
	}
}

func RateLimitMiddleware(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request)
		if httpError != nil {
			c.JSON(httpError.StatusCode, gin.H{"success": false, "message": httpError.Message})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) primitive.ObjectID {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return primitive.NilObjectID
	}
	return userID.(primitive.ObjectID)
}

func GetToken(c *gin.Context) string {
	token, exists := c.Get(TokenKey)
	if !exists {
		return ""
	}
	return token.(string)
}
