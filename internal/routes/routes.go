package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-planner/internal/audit"
	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	"github.com/BruksfildServices01/appointment-planner/internal/config"
	"github.com/BruksfildServices01/appointment-planner/internal/handlers"
	infraRepo "github.com/BruksfildServices01/appointment-planner/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-planner/internal/mapper"
	"github.com/BruksfildServices01/appointment-planner/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-planner/internal/usecase/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/validators"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	listCache cache.ListCache,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	personRepo := infraRepo.NewPersonGormRepository(db)
	locationRepo := infraRepo.NewLocationGormRepository(db)

	validator := validators.New(personRepo, locationRepo, cfg.Limits)
	domainMapper := mapper.New(cfg.Limits, timezone.Location(cfg.Timezone))
	responseMapper := mapper.NewResponseMapper(personRepo, locationRepo)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
		responseMapper,
		listCache,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		validator,
		domainMapper,
		responseMapper,
		listCache,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		listCache,
		auditDispatcher,
	)

	listPeopleUC := ucAppointment.NewListPeople(personRepo, listCache)
	createPersonUC := ucAppointment.NewCreatePerson(
		personRepo,
		validator,
		domainMapper,
		listCache,
		auditDispatcher,
	)

	listLocationsUC := ucAppointment.NewListLocations(locationRepo, listCache)
	createLocationUC := ucAppointment.NewCreateLocation(
		locationRepo,
		validator,
		domainMapper,
		listCache,
		auditDispatcher,
	)

	overviewUC := ucAppointment.NewGetOverview(
		listAppointmentsUC,
		listPeopleUC,
		listLocationsUC,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		deleteAppointmentUC,
	)
	personHandler := handlers.NewPersonHandler(createPersonUC, listPeopleUC)
	locationHandler := handlers.NewLocationHandler(createLocationUC, listLocationsUC)
	overviewHandler := handlers.NewOverviewHandler(overviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/create", appointmentHandler.CreateDeprecated)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// PEOPLE / LOCATIONS
		// ------------------------------
		api.GET("/people", personHandler.List)
		api.POST("/people", personHandler.Create)

		api.GET("/locations", locationHandler.List)
		api.POST("/locations", locationHandler.Create)

		api.GET("/overview", overviewHandler.Get)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
