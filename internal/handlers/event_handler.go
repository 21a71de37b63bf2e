package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akshaygopinath16/Doddamagge/internal/helpers"
	"github.com/akshaygopinath16/Doddamagge/internal/middleware"
	"github.com/akshaygopinath16/Doddamagge/internal/models"
	"github.com/akshaygopinath16/Doddamagge/internal/scope"
)

type EventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved"`
}

// ListEvents returns all events for admins and only approved events for
// everyone else.
func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var events []models.Event
	query := scope.Events(c.GetString("role")).Apply(gormDB)
	if err := query.Order("date ASC").Find(&events).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent accepts a multipart form with an optional image. Events created
// by admins go live immediately; everyone else's wait for approval.
func CreateEvent(c *gin.Context) {
	title := c.PostForm("title")
	date := c.PostForm("date")
	location := c.PostForm("location")
	description := c.PostForm("description")

	if title == "" || date == "" || location == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	status := models.EventPending
	if c.GetString("role") == models.RoleAdmin {
		status = models.EventApproved
	}

	event := models.Event{
		Title:       title,
		Date:        date,
		Location:    location,
		Description: description,
		Status:      status,
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadImage(c, imageFile)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		event.Image = imagePath
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent updates event details; absent form fields keep their current
// values.
func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if title := c.PostForm("title"); title != "" {
		event.Title = title
	}
	if date := c.PostForm("date"); date != "" {
		event.Date = date
	}
	if location := c.PostForm("location"); location != "" {
		event.Location = location
	}
	if description := c.PostForm("description"); description != "" {
		event.Description = description
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadImage(c, imageFile)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		event.Image = imagePath
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEventStatus flips an event between pending and approved. The status
// change commits first; the approval email is dispatched afterwards as
// fire-and-forget, so a broken mail transport can never fail or roll back
// the approval.
func UpdateEventStatus(c *gin.Context) {
	eventID := c.Param("id")

	var req EventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid status. Must be 'pending' or 'approved'.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	event.Status = req.Status
	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event status.")
		return
	}

	if req.Status == models.EventApproved {
		if m := middleware.GetMailer(c); m != nil {
			// Events carry no creator reference, so the notification goes to
			// a fixed address.
			m.SendAsync(
				"user@example.com",
				"Your Event Has Been Approved!",
				fmt.Sprintf("Congratulations! Your event %q has been approved and is now live.", event.Title),
			)
		}
	}

	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Where("id = ?", eventID).Delete(&models.Event{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event removed."})
}
