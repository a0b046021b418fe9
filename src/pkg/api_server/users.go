package api_server

import (
	"net/http"

	"api.sahayatri.app/src/pkg/models/user"
	"api.sahayatri.app/src/pkg/services/password"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RegisterUserRoutes(r *gin.Engine) {
	r.GET("/get_user/:id", GetSingleUser)
	r.POST("/update_user", AuthMiddleware(), AuditUpdate(user.UserCollection), UpdateUser)
	r.DELETE("/delete_user", AuthMiddleware(), AuditDelete(user.UserCollection), DeleteUser)
}

func GetSingleUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "User ID is required!"})
		return
	}

	currentUser := user.GetUserByID(userID)
	if currentUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User fetched successfully",
		"user":    currentUser,
	})
}

func UpdateUser(c *gin.Context) {
	var update user.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please enter all required fields."})
		return
	}

	currentUser := user.GetUserByID(GetUserID(c))
	if currentUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if update.Password != "" {
		if ok, reason := password.ValidateComplexity(update.Password); !ok {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": reason})
			return
		}
		if !password.CheckHistory(currentUser.PasswordHistory, update.Password) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "You cannot reuse a previous password."})
			return
		}
		if err := currentUser.ChangePassword(update.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
			return
		}
	}

	if err := currentUser.UpdateProfile(&update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User profile updated successfully",
		"user":    currentUser,
	})
}

func DeleteUser(c *gin.Context) {
	currentUser := user.GetUserByID(GetUserID(c))
	if currentUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if err := currentUser.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
