package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Accounts       *handlers.AccountsHandler
	Users          *handlers.UsersHandler
	Profiles       *handlers.ProfilesHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	AuthMiddleware *auth.AuthMiddleware
	MediaRoot      string
}

// RegisterRoutes wires HTTP routes. Fiber's non-strict routing makes the
// trailing-slash and bare forms of each path equivalent.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.MediaRoot != "" {
		app.Static("/media", cfg.MediaRoot)
	}

	api := app.Group("/api")

	accounts := api.Group("/accounts")
	accounts.Post("/register", cfg.Accounts.Register)
	accounts.Post("/token", cfg.Accounts.PasswordLogin)
	accounts.Post("/token/refresh", cfg.Accounts.Refresh)
	accounts.Post("/google/login", cfg.Accounts.GoogleLogin)
	accounts.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Accounts.Logout)
	accounts.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Accounts.Profile)

	users := accounts.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	employeeProfiles := accounts.Group("/employee-profiles", cfg.AuthMiddleware.Handle)
	employeeProfiles.Get("/", cfg.Profiles.ListEmployeeProfiles)
	employeeProfiles.Post("/", cfg.Profiles.CreateEmployeeProfile)
	employeeProfiles.Get("/:id", cfg.Profiles.GetEmployeeProfile)
	employeeProfiles.Put("/:id", cfg.Profiles.UpdateEmployeeProfile)
	employeeProfiles.Patch("/:id", cfg.Profiles.UpdateEmployeeProfile)
	employeeProfiles.Delete("/:id", cfg.Profiles.DeleteEmployeeProfile)

	companyProfiles := accounts.Group("/company-profiles", cfg.AuthMiddleware.Handle)
	companyProfiles.Get("/", cfg.Profiles.ListCompanyProfiles)
	companyProfiles.Post("/", cfg.Profiles.CreateCompanyProfile)
	companyProfiles.Get("/:id", cfg.Profiles.GetCompanyProfile)
	companyProfiles.Put("/:id", cfg.Profiles.UpdateCompanyProfile)
	companyProfiles.Patch("/:id", cfg.Profiles.UpdateCompanyProfile)
	companyProfiles.Delete("/:id", cfg.Profiles.DeleteCompanyProfile)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.AuthMiddleware.HandleOptional, cfg.Jobs.List)
	jobs.Post("/", cfg.AuthMiddleware.Handle, cfg.Jobs.Create)
	jobs.Get("/my_jobs", cfg.AuthMiddleware.Handle, cfg.Jobs.MyJobs)
	jobs.Get("/:id", cfg.AuthMiddleware.HandleOptional, cfg.Jobs.Get)
	jobs.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.Update)
	jobs.Patch("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Jobs.Delete)
	jobs.Post("/:id/apply", cfg.AuthMiddleware.Handle, cfg.Jobs.Apply)

	applications := api.Group("/applications", cfg.AuthMiddleware.Handle)
	applications.Get("/", cfg.Applications.List)
	applications.Get("/:id", cfg.Applications.Get)
	applications.Put("/:id", cfg.Applications.Update)
	applications.Patch("/:id", cfg.Applications.Update)
	applications.Delete("/:id", cfg.Applications.Withdraw)
	applications.Post("/:id/update_status", cfg.Applications.UpdateStatus)
	applications.Post("/:id/withdraw", cfg.Applications.Withdraw)
}
