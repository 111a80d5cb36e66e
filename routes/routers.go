package routes

import (
	"payroll/constants"
	"payroll/controllers"
	middlewares "payroll/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	router.Use(middlewares.RequestIDMiddleware())

	api := router.Group("/api")

	api.GET("/health", controllers.Health)

	api.POST("/auth/login", controllers.Login)
	api.POST("/auth/register", controllers.Register)

	api.GET("/employees", middlewares.AuthMiddleware(), controllers.GetEmployees)
	api.GET("/employees/:id", middlewares.AuthMiddleware(), controllers.GetEmployeeByID)
	api.POST("/employees", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateEmployee)
	api.PUT("/employees/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateEmployee)
	api.DELETE("/employees/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteEmployee)

	api.GET("/payroll", middlewares.AuthMiddleware(), controllers.GetPayrolls)
	api.GET("/payroll/summary", middlewares.AuthMiddleware(), controllers.GetPayrollSummary)
	api.POST("/payroll", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreatePayroll)
	api.POST("/payroll/generate", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GeneratePayroll)
	api.PUT("/payroll/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdatePayroll)
	api.DELETE("/payroll/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeletePayroll)
}
