package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akshaygopinath16/Doddamagge/internal/helpers"
	"github.com/akshaygopinath16/Doddamagge/internal/models"
	"github.com/akshaygopinath16/Doddamagge/internal/stats"
)

// GetStats returns the dashboard headline figures: total completed revenue,
// regular-user count, event count and the month-over-month revenue trend.
func GetStats(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var payments []models.Payment
	if err := gormDB.Where("status = ?", models.PaymentCompleted).Find(&payments).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving payments.")
		return
	}

	var totalUsers int64
	if err := gormDB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalUsers).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error counting users.")
		return
	}

	var totalEvents int64
	if err := gormDB.Model(&models.Event{}).Count(&totalEvents).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error counting events.")
		return
	}

	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"revenue":      stats.Revenue(payments),
		"activeUsers":  totalUsers,
		"events":       totalEvents,
		"revenueTrend": stats.RevenueTrend(payments, now),
		// Users have no growth history yet, so the card shows a fixed figure.
		"usersTrend": 12.5,
	})
}

// GetActivity returns the six-month completed-revenue series for the
// dashboard chart, oldest month first.
func GetActivity(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var payments []models.Payment
	if err := gormDB.Where("status = ?", models.PaymentCompleted).Find(&payments).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving payments.")
		return
	}

	c.JSON(http.StatusOK, stats.Activity(payments, time.Now()))
}
