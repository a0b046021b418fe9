package api_server

import (
	"net/http"
	"strconv"

	"api.sahayatri.app/src/pkg/models/favourites"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var DEFAULT_PAGE = 1
var DEFAULT_PAGE_SIZE = 10

func RegisterFavouriteRoutes(r *gin.Engine) {
	r.POST("/create_favourite", CreateFavourite)
	r.GET("/get_favourite/:id", GetFavourites)
	r.DELETE("/delete_favourite/:id", DeleteFavourite)
}

func CreateFavourite(c *gin.Context) {
	var body favourites.FavouriteCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(body.UserID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	vehicleID, err := primitive.ObjectIDFromHex(body.VehicleID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	favourite, err := favourites.CreateFavourite(userID, vehicleID)
	if err == favourites.ErrAlreadyAdded {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "You've already added it"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
		return
	}

	if !recordCreate(c, userID, favourites.FavouriteCollection, favourite.ID, favourite) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added Favourite successfully",
		"data":    favourite,
	})
}

// GetFavourites lists one page of a user's favourites. _page and _limit are
// plain base-10 integers with sane defaults.
func GetFavourites(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "User ID is required!"})
		return
	}

	page := DEFAULT_PAGE
	if raw := c.Query("_page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	limit := DEFAULT_PAGE_SIZE
	if raw := c.Query("_limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result, err := favourites.GetFavouritesForUser(userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Favourites Fetched successfully",
		"favourites": result,
	})
}

func DeleteFavourite(c *gin.Context) {
	favouriteID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Favourite ID is required!"})
		return
	}

	err = favourites.DeleteFavourite(favouriteID)
	if err == favourites.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favourite Removed"})
}
