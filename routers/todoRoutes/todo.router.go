package todoRoutes

import (
	"github.com/gofiber/fiber/v2"

	todoController "luma/controllers/todo"
	"luma/middleware"
	todoValidator "luma/validators/todo"
)

// SetupTodoRoutes sets up the member to-do list routes
func SetupTodoRoutes(app *fiber.App) {
	todoGroup := app.Group("/todos", middleware.JWTMiddleware)

	todoGroup.Get("/", todoController.GetTodos)
	todoGroup.Post("/", todoValidator.CreateTodo(), todoController.CreateTodo)
	todoGroup.Put("/:id", todoValidator.UpdateTodo(), todoController.UpdateTodo)
	todoGroup.Post("/:id/toggle", todoController.ToggleTodo)
	todoGroup.Delete("/:id", todoController.DeleteTodo)
}
