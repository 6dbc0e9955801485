package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mtendere/backoffice/internal/api/handler"
	"github.com/mtendere/backoffice/internal/api/middleware"
	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
	"github.com/mtendere/backoffice/internal/core/service"
	"github.com/mtendere/backoffice/internal/infrastructure/config"
	"github.com/mtendere/backoffice/internal/infrastructure/db/memory"
	redisdb "github.com/mtendere/backoffice/internal/infrastructure/db/redis"
)

// Dependencies carries the externally constructed collaborators the router
// wires into handlers. Mongo and Redis are optional; a nil client keeps the
// corresponding feature on its in-process fallback.
type Dependencies struct {
	Config   *config.Config
	Log      zerolog.Logger
	Users    ports.UserRepository
	Mongo    *mongo.Client
	Redis    *redis.Client
	Activity interface {
		ports.ActivityRecorder
		ports.ActivityFeed
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Core services ---
	tokenService := service.NewTokenService(deps.Config.JWTSecret, deps.Config.TokenTTL)
	authService := service.NewAuthService(deps.Users, tokenService, deps.Activity, deps.Log)
	userService := service.NewUserService(deps.Users, deps.Log)

	var cache ports.ResponseCache
	if deps.Redis != nil {
		cache = redisdb.NewResponseCache(deps.Redis, deps.Config.PublicCacheTTL)
	}

	// --- Managed catalogs ---
	scholarships := service.NewCatalog[*domain.Scholarship]("scholarship", memory.NewScholarshipCollection(), nil, deps.Activity, deps.Log)
	jobs := service.NewCatalog[*domain.Job]("job", memory.NewJobCollection(), nil, deps.Activity, deps.Log)
	applications := service.NewCatalog[*domain.Application]("application", memory.NewApplicationCollection(), (*domain.Application).Normalize, deps.Activity, deps.Log)
	partners := service.NewCatalog[*domain.Partner]("partner", memory.NewPartnerCollection(), nil, deps.Activity, deps.Log)
	blogPosts := service.NewCatalog[*domain.BlogPost]("blog_post", memory.NewBlogPostCollection(), (*domain.BlogPost).Normalize, deps.Activity, deps.Log)
	teamMembers := service.NewCatalog[*domain.TeamMember]("team_member", memory.NewTeamMemberCollection(), nil, deps.Activity, deps.Log)
	testimonials := service.NewCatalog[*domain.Testimonial]("testimonial", memory.NewTestimonialCollection(), nil, deps.Activity, deps.Log)
	roles := service.NewCatalog[*domain.RoleDefinition]("role", memory.NewRoleCollection(), (*domain.RoleDefinition).Normalize, deps.Activity, deps.Log)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(authService)
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Public read-only routes ---
	mountPublic(apiGroup, "scholarships", scholarships, func(s *domain.Scholarship) bool { return s.IsActive }, cache, deps.Log)
	mountPublic(apiGroup, "jobs", jobs, func(j *domain.Job) bool { return j.IsActive }, cache, deps.Log)
	mountPublic(apiGroup, "partners", partners, func(p *domain.Partner) bool { return p.IsActive }, cache, deps.Log)
	mountPublic(apiGroup, "blog-posts", blogPosts, func(p *domain.BlogPost) bool { return p.Status == domain.BlogPostPublished }, cache, deps.Log)
	mountPublic(apiGroup, "team-members", teamMembers, func(m *domain.TeamMember) bool { return m.IsActive }, cache, deps.Log)
	mountPublic(apiGroup, "testimonials", testimonials, func(t *domain.Testimonial) bool { return t.IsApproved }, cache, deps.Log)

	// --- Admin routes ---
	authMW := middleware.Auth(tokenService)
	admin := apiGroup.Group("/admin", authMW, middleware.RequireRole(domain.RoleAdmin))

	mountCatalog(admin, "scholarships", scholarships, func() *domain.Scholarship { return &domain.Scholarship{} })
	mountCatalog(admin, "jobs", jobs, func() *domain.Job { return &domain.Job{} })
	mountCatalog(admin, "applications", applications, func() *domain.Application { return &domain.Application{} })
	mountCatalog(admin, "partners", partners, func() *domain.Partner { return &domain.Partner{} })
	mountCatalog(admin, "blog", blogPosts, func() *domain.BlogPost { return &domain.BlogPost{} })
	mountCatalog(admin, "team", teamMembers, func() *domain.TeamMember { return &domain.TeamMember{} })
	mountCatalog(admin, "testimonials", testimonials, func() *domain.Testimonial { return &domain.Testimonial{} })
	mountCatalog(admin, "roles", roles, func() *domain.RoleDefinition { return &domain.RoleDefinition{} })

	userHandler := handler.NewUserHandler(userService)
	userHandler.Register(admin.Group("/users"))

	// --- Dashboard and analytics ---
	counters := []handler.Counter{
		{Name: "scholarships", Count: countOf(scholarships)},
		{Name: "jobs", Count: countOf(jobs)},
		{Name: "applications", Count: countOf(applications)},
		{Name: "partners", Count: countOf(partners)},
		{Name: "blog_posts", Count: countOf(blogPosts)},
		{Name: "team_members", Count: countOf(teamMembers)},
		{Name: "testimonials", Count: countOf(testimonials)},
		{Name: "users", Count: deps.Users.Count},
	}
	dashboardHandler := handler.NewDashboardHandler(counters, deps.Activity)
	admin.GET("/dashboard", dashboardHandler.Dashboard)

	analytics := apiGroup.Group("/analytics", authMW, middleware.RequireRole(domain.RoleAdmin))
	analytics.GET("", dashboardHandler.Activity)
	analytics.GET("/summary", dashboardHandler.Summary)

	return e
}

func mountCatalog[T domain.Resource](g *echo.Group, path string, catalog ports.Catalog[T], newItem func() T) {
	handler.NewCatalogHandler(path, catalog, newItem).Register(g.Group("/" + path))
}

func mountPublic[T domain.Resource](g *echo.Group, path string, catalog ports.Catalog[T], visible func(T) bool, cache ports.ResponseCache, logger zerolog.Logger) {
	handler.NewPublicCatalogHandler(path, catalog, visible, cache, logger).Register(g.Group("/" + path))
}

func countOf[T domain.Resource](catalog *service.Catalog[T]) func(ctx context.Context) (int64, error) {
	return catalog.Count
}
