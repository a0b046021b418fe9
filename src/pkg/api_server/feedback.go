package api_server

import (
	"net/http"

	"api.sahayatri.app/src/pkg/models/feedback"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RegisterFeedbackRoutes(r *gin.Engine) {
	r.POST("/create_feedback/:id", CreateFeedback)
	r.GET("/get_feedback/:id", GetFeedback)
}

type feedbackBody struct {
	Feedback string `json:"feedback" binding:"required"`
	UserID   string `json:"userId"`
}

func CreateFeedback(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Vehicle ID is required!"})
		return
	}

	var body feedbackBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	// the submitting user is optional on the wire but kept when present so
	// deleting the user can cascade to their feedback
	userID := primitive.NilObjectID
	if body.UserID != "" {
		userID, err = primitive.ObjectIDFromHex(body.UserID)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "All fields are required"})
			return
		}
	}

	newFeedback, err := feedback.CreateFeedback(userID, vehicleID, body.Feedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
		return
	}

	if !recordCreate(c, userID, feedback.FeedbackCollection, newFeedback.ID, newFeedback) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added successfully",
		"data":    newFeedback,
	})
}

func GetFeedback(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Vehicle ID is required!"})
		return
	}

	feedbacks, err := feedback.GetFeedbackForVehicle(vehicleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Feedback fetched successfully",
		"feedbacks": feedbacks,
	})
}
