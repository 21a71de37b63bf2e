package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akshaygopinath16/Doddamagge/internal/helpers"
	"github.com/akshaygopinath16/Doddamagge/internal/models"
	"github.com/akshaygopinath16/Doddamagge/internal/scope"
)

type CreatePaymentRequest struct {
	User   string  `json:"user" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gte=0"`
	Status string  `json:"status" binding:"omitempty,oneof=Pending Completed Failed"`
	Date   string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdatePaymentRequest struct {
	User   string   `json:"user"`
	Amount *float64 `json:"amount" binding:"omitempty,gte=0"`
	Status string   `json:"status" binding:"omitempty,oneof=Pending Completed Failed"`
	Date   string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Completed Failed"`
}

// ListPayments returns all payments for admins; everyone else sees only
// payments whose user reference matches their own username.
func ListPayments(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var payments []models.Payment
	query := scope.Payments(c.GetString("role"), c.GetString("username")).Apply(gormDB)
	if err := query.Order("date DESC").Find(&payments).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving payments.")
		return
	}

	c.JSON(http.StatusOK, payments)
}

func CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	status := req.Status
	if status == "" {
		status = models.PaymentPending
	}

	payment := models.Payment{
		Username: req.User,
		Amount:   req.Amount,
		Status:   status,
		Date:     req.Date,
	}

	if err := gormDB.Create(&payment).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment.")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func UpdatePayment(c *gin.Context) {
	paymentID := c.Param("id")

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var payment models.Payment
	if err := gormDB.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Payment not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding payment.")
		return
	}

	if req.User != "" {
		payment.Username = req.User
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Status != "" {
		payment.Status = req.Status
	}
	if req.Date != "" {
		payment.Date = req.Date
	}

	if err := gormDB.Save(&payment).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment.")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func UpdatePaymentStatus(c *gin.Context) {
	paymentID := c.Param("id")

	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid status. Must be 'Pending', 'Completed' or 'Failed'.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var payment models.Payment
	if err := gormDB.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Payment not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding payment.")
		return
	}

	payment.Status = req.Status
	if err := gormDB.Save(&payment).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment status.")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func DeletePayment(c *gin.Context) {
	paymentID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Where("id = ?", paymentID).Delete(&models.Payment{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Payment not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment removed."})
}
