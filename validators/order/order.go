package orderValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"luma/middleware"
	"luma/models"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint    `json:"user_id"`
			Items  string  `json:"items"`
			Amount float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User id is required!"
		}
		if strings.TrimSpace(reqData.Items) == "" {
			errors["items"] = "Items are required!"
		}
		if reqData.Amount < 0 {
			errors["amount"] = "Amount must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

// UpdateOrder only accepts storable statuses; COMPLETED is derived for
// display and can never be written.
func UpdateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status         string `json:"status"`
			TrackingNumber string `json:"tracking_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case "", models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped:
		default:
			errors["status"] = "Status must be PENDING, PROCESSING or SHIPPED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrderUpdate", reqData)
		return c.Next()
	}
}
