package orderController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"luma/database"
	"luma/middleware"
	"luma/models"
)

// orderView is the order as shown to members: the display status derives
// COMPLETED from shipped age while the stored column stays untouched.
type orderView struct {
	models.Order
	DisplayStatus string `json:"display_status"`
}

// GetMyOrders lists the caller's orders with their derived display status
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("order_date desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	now := time.Now()
	result := make([]orderView, len(orders))
	for i, o := range orders {
		result[i] = orderView{Order: o, DisplayStatus: o.DisplayStatus(now)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": result,
		"total":  len(result),
	})
}

// MarkTrackingSeen marks an order's tracking number as seen by the member
func MarkTrackingSeen(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", orderID, userID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	order.TrackingSeen = true
	if err := database.Database.Db.Save(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracking marked as seen!", order)
}

// AdminListOrders lists all orders for the back office
func AdminListOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("order_date desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	now := time.Now()
	result := make([]orderView, len(orders))
	for i, o := range orders {
		result[i] = orderView{Order: o, DisplayStatus: o.DisplayStatus(now)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": result,
		"total":  len(result),
	})
}

// AdminCreateOrder records a new order for a member
func AdminCreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedOrder").(*struct {
		UserID uint    `json:"user_id"`
		Items  string  `json:"items"`
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	order := models.Order{
		UserID:    reqData.UserID,
		Items:     reqData.Items,
		Amount:    reqData.Amount,
		Status:    models.OrderStatusPending,
		OrderDate: time.Now(),
	}

	if err := database.Database.Db.Create(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully!", order)
}

// AdminUpdateOrder updates an order's stored status and tracking number.
// COMPLETED cannot be stored; it only ever appears as a derived display
// status.
func AdminUpdateOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", orderID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	reqData, ok := c.Locals("validatedOrderUpdate").(*struct {
		Status         string `json:"status"`
		TrackingNumber string `json:"tracking_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Status != "" {
		order.Status = reqData.Status
	}
	if reqData.TrackingNumber != "" {
		order.TrackingNumber = reqData.TrackingNumber
		order.TrackingSeen = false // New tracking number has not been seen yet
	}

	if err := database.Database.Db.Save(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order updated successfully!", order)
}
