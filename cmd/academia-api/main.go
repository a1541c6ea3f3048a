package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acadely/academia-api/internal/handler"
	"github.com/acadely/academia-api/internal/metrics"
	"github.com/acadely/academia-api/internal/middleware"
	"github.com/acadely/academia-api/internal/repository"
	"github.com/acadely/academia-api/internal/service"
	"github.com/acadely/academia-api/pkg/config"
	"github.com/acadely/academia-api/pkg/database"
	"github.com/acadely/academia-api/pkg/logger"
	corsmiddleware "github.com/acadely/academia-api/pkg/middleware/cors"
	reqidmiddleware "github.com/acadely/academia-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "error", err, "path", cfg.Database.Path)
	}
	defer db.Close() //nolint:errcheck

	store := repository.NewStore(db, logr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.Bootstrap(ctx, cfg.Bootstrap.AdminUser, cfg.Bootstrap.AdminRole, cfg.Bootstrap.AdminPassword); err != nil {
		logr.Sugar().Fatalw("failed to bootstrap store", "error", err)
	}

	validate := validator.New()
	authService := service.NewAuthService(store.Users, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	teamService := service.NewTeamService(store.Teams, logr)
	enrollmentService := service.NewEnrollmentService(store.Inscriptions, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(metrics.GinMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(r, cfg, store, authService, teamService, enrollmentService)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	store *repository.Store,
	authService *service.AuthService,
	teamService *service.TeamService,
	enrollmentService *service.EnrollmentService,
) {
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(store.Users)
	teamHandler := handler.NewTeamHandler(teamService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	catalogHandler := handler.NewCatalogHandler(store)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/change-password", middleware.JWT(authService), authHandler.ChangePassword)
	auth.GET("/me", middleware.JWT(authService), authHandler.Me)

	protected := api.Group("", middleware.JWT(authService))

	users := protected.Group("/users", middleware.RequireRole("Administrador"))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:username/role", userHandler.UpdateRole)
	users.DELETE("/:username", userHandler.Delete)

	teams := protected.Group("/teams")
	teams.GET("", teamHandler.List)
	teams.POST("", teamHandler.Create)
	teams.GET("/:id", teamHandler.Get)
	teams.PUT("/:id", teamHandler.Update)
	teams.DELETE("/:id", teamHandler.Delete)

	enrollments := protected.Group("/enrollments")
	enrollments.POST("", enrollmentHandler.Enroll)
	enrollments.GET("/:id", enrollmentHandler.Get)
	enrollments.DELETE("/:id", enrollmentHandler.Delete)

	cycles := protected.Group("/cycles")
	cycles.GET("", catalogHandler.ListCycles)
	cycles.POST("", catalogHandler.CreateCycle)
	cycles.GET("/:id", catalogHandler.GetCycle)
	cycles.PUT("/:id", catalogHandler.UpdateCycle)
	cycles.DELETE("/:id", catalogHandler.DeleteCycle)

	classrooms := protected.Group("/classrooms")
	classrooms.GET("", catalogHandler.ListClassrooms)
	classrooms.POST("", catalogHandler.CreateClassroom)
	classrooms.GET("/:id", catalogHandler.GetClassroom)
	classrooms.PUT("/:id", catalogHandler.UpdateClassroom)
	classrooms.DELETE("/:id", catalogHandler.DeleteClassroom)

	courses := protected.Group("/courses")
	courses.GET("", catalogHandler.ListCourses)
	courses.POST("", catalogHandler.CreateCourse)
	courses.GET("/:id", catalogHandler.GetCourse)
	courses.PUT("/:id", catalogHandler.UpdateCourse)
	courses.DELETE("/:id", catalogHandler.DeleteCourse)

	teachers := protected.Group("/teachers")
	teachers.GET("", catalogHandler.ListTeachers)
	teachers.POST("", catalogHandler.CreateTeacher)
	teachers.GET("/:id", catalogHandler.GetTeacher)
	teachers.PUT("/:id", catalogHandler.UpdateTeacher)
	teachers.DELETE("/:id", catalogHandler.DeleteTeacher)

	students := protected.Group("/students")
	students.GET("", catalogHandler.ListStudents)
	students.POST("", catalogHandler.CreateStudent)
	students.GET("/:id", catalogHandler.GetStudent)
	students.PUT("/:id", catalogHandler.UpdateStudent)
	students.DELETE("/:id", catalogHandler.DeleteStudent)
}
