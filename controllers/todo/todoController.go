package todoController

import (
	"github.com/gofiber/fiber/v2"

	"luma/database"
	"luma/middleware"
	"luma/models"
)

// GetTodos lists the caller's to-do items
func GetTodos(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var todos []models.Todo
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("position asc, created_at asc").Find(&todos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch todos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Todos fetched successfully!", fiber.Map{
		"todos": todos,
		"total": len(todos),
	})
}

// CreateTodo adds a to-do item for the caller
func CreateTodo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTodo").(*struct {
		Title    string `json:"title"`
		Position int    `json:"position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	todo := models.Todo{
		UserID:   userID,
		Title:    reqData.Title,
		Position: reqData.Position,
	}

	if err := database.Database.Db.Create(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create todo!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Todo created successfully!", todo)
}

// ToggleTodo flips the done flag of a to-do item
func ToggleTodo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	todoID, err := c.ParamsInt("id")
	if err != nil || todoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid todo id!", nil)
	}

	var todo models.Todo
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", todoID, userID, false).First(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Todo not found!", nil)
	}

	todo.Done = !todo.Done
	if err := database.Database.Db.Save(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update todo!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Todo toggled successfully!", todo)
}

// UpdateTodo edits a to-do item's title or position
func UpdateTodo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	todoID, err := c.ParamsInt("id")
	if err != nil || todoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid todo id!", nil)
	}

	var todo models.Todo
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", todoID, userID, false).First(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Todo not found!", nil)
	}

	reqData, ok := c.Locals("validatedTodoUpdate").(*struct {
		Title    string `json:"title"`
		Position *int   `json:"position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		todo.Title = reqData.Title
	}
	if reqData.Position != nil {
		todo.Position = *reqData.Position
	}

	if err := database.Database.Db.Save(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update todo!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Todo updated successfully!", todo)
}

// DeleteTodo soft deletes a to-do item
func DeleteTodo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	todoID, err := c.ParamsInt("id")
	if err != nil || todoID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid todo id!", nil)
	}

	var todo models.Todo
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", todoID, userID, false).First(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Todo not found!", nil)
	}

	todo.IsDeleted = true
	if err := database.Database.Db.Save(&todo).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete todo!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Todo deleted successfully!", nil)
}
