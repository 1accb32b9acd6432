package routes

import (
	"github.com/zenott/boilerplate-project-exercisetracker/controllers"
	"github.com/zenott/boilerplate-project-exercisetracker/middlewares"
	"github.com/zenott/boilerplate-project-exercisetracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the store handle through the services and controllers
// and assembles the route table.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.ErrorHandler())

	users := services.NewUserService(db)
	logs := services.NewLogService(db)
	uc := controllers.NewUserController(users)
	lc := controllers.NewLogController(users, logs)

	r.StaticFile("/", "./views/index.html")
	r.Static("/public", "./public")

	api := r.Group("/api/exercise")
	{
		api.POST("/new-user", uc.CreateUser)
		api.POST("/add", lc.AddLog)
		api.GET("/users", uc.ListUsers)
		api.GET("/log", lc.GetLogs)
	}

	r.NoRoute(middlewares.NotFound())

	return r
}
