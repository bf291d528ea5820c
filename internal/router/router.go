package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/redis/go-redis/v9"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/middleware"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/redisdb"
	"workforce/backend/internal/service"

	"workforce/backend/internal/repository/postgres/account"
	"workforce/backend/internal/repository/postgres/actionlog"
	"workforce/backend/internal/repository/postgres/attendance"
	"workforce/backend/internal/repository/postgres/calendar"
	"workforce/backend/internal/repository/postgres/company"
	"workforce/backend/internal/repository/postgres/department"
	"workforce/backend/internal/repository/postgres/employment"
	"workforce/backend/internal/repository/postgres/leave"
	"workforce/backend/internal/repository/postgres/payslip"

	account_controller "workforce/backend/internal/controller/http/v1/account"
	actionlog_controller "workforce/backend/internal/controller/http/v1/actionlog"
	attendance_controller "workforce/backend/internal/controller/http/v1/attendance"
	auth_controller "workforce/backend/internal/controller/http/v1/auth"
	calendar_controller "workforce/backend/internal/controller/http/v1/calendar"
	company_controller "workforce/backend/internal/controller/http/v1/company"
	department_controller "workforce/backend/internal/controller/http/v1/department"
	employment_controller "workforce/backend/internal/controller/http/v1/employment"
	"workforce/backend/internal/controller/http/v1/file"
	leave_controller "workforce/backend/internal/controller/http/v1/leave"
	payslip_controller "workforce/backend/internal/controller/http/v1/payslip"
)

type Router struct {
	*web.App
	postgresDB         *postgresql.Database
	redisDB            *redis.Client
	port               string
	auth               *auth.Auth
	fileServerBasePath string
	cfg                *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	fileServerBasePath string,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		fileServerBasePath,
		cfg,
	}
}

// AttendanceRepository exposes the attendance store for background jobs.
func (r Router) AttendanceRepository() *attendance.Repository {
	return attendance.NewRepository(r.postgresDB)
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// - postgresql
	accountPostgres := account.NewRepository(r.postgresDB)
	departmentPostgres := department.NewRepository(r.postgresDB)
	employmentPostgres := employment.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	actionlogPostgres := actionlog.NewRepository(r.postgresDB)
	leavePostgres := leave.NewRepository(r.postgresDB)
	calendarPostgres := calendar.NewRepository(r.postgresDB)
	payslipPostgres := payslip.NewRepository(r.postgresDB)
	companyPostgres := company.NewRepository(r.postgresDB)

	// - redis
	statusStore := redisdb.NewStatusStore(r.redisDB, time.Duration(r.cfg.AttendanceCooldownSeconds)*time.Second)

	mailer := service.NewMailer(r.cfg)

	// controller
	authController := auth_controller.NewController(accountPostgres, mailer, r.cfg)
	accountController := account_controller.NewController(accountPostgres)
	departmentController := department_controller.NewController(departmentPostgres)
	employmentController := employment_controller.NewController(employmentPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres, statusStore)
	actionlogController := actionlog_controller.NewController(actionlogPostgres)
	leaveController := leave_controller.NewController(leavePostgres)
	calendarController := calendar_controller.NewController(calendarPostgres)
	payslipController := payslip_controller.NewController(payslipPostgres)
	companyController := company_controller.NewController(companyPostgres)

	fileC := file.NewController(r.App, r.fileServerBasePath)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)
	r.Post("/api/v1/register", authController.Register)
	r.Post("/api/v1/verify-email", authController.VerifyEmail)
	r.Post("/api/v1/resend-verification", authController.ResendVerification)
	r.Post("/api/v1/forgot-password", authController.ForgotPassword)
	r.Post("/api/v1/reset-password", authController.ResetPassword)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)
	r.Post("/api/v1/upload", fileC.Upload, middleware.Authenticate(r.auth))

	// #account
	r.Get("/api/v1/account/list", accountController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/account/export", accountController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/account/export_template", accountController.ExportTemplate, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/account/badge/:employee_id", accountController.Badge, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/account/badgelist", accountController.BadgeSheet, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/account/:id", accountController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/account/create", accountController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/account/:id", accountController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/account/:id/profile-image", accountController.UploadProfileImage, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/account/:id/archive", accountController.Archive, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/account/:id/unarchive", accountController.Unarchive, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/account/:id", accountController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #department
	r.Get("/api/v1/department/list", departmentController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/department/:id", departmentController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/department/create", departmentController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/department/:id", departmentController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/department/:id", departmentController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #employment
	r.Get("/api/v1/employment/list", employmentController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/employment/account/:account_id", employmentController.GetByAccountId, middleware.Authenticate(r.auth))
	r.Put("/api/v1/employment/account/:account_id", employmentController.Upsert, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/employment/:id", employmentController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/latest", attendanceController.GetLatest, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/statistics", attendanceController.GetStatistics, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/attendance/:id", attendanceController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Post("/api/v1/attendance/timein", attendanceController.TimeIn, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/attendance/timeout", attendanceController.TimeOut, middleware.Authenticate(r.auth))
	r.Put("/api/v1/attendance/:id", attendanceController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Patch("/api/v1/attendance/:id", attendanceController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #actionlog
	r.Get("/api/v1/actionlog/list", actionlogController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/actionlog/pending", actionlogController.GetPending, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Post("/api/v1/actionlog/create", actionlogController.Create, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/actionlog/:id/approve", actionlogController.Approve, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Patch("/api/v1/actionlog/:id/reject", actionlogController.Reject, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/actionlog/:id", actionlogController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #leave
	r.Get("/api/v1/leave/list", leaveController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/leave/pending", leaveController.GetPending, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Get("/api/v1/leave/employee/:account_id", leaveController.GetByEmployee, middleware.Authenticate(r.auth))
	r.Post("/api/v1/leave/create", leaveController.Create, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/leave/:id", leaveController.UpdateColumns, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/leave/:id/approve", leaveController.Approve, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Patch("/api/v1/leave/:id/reject", leaveController.Reject, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/leave/:id", leaveController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #calendar
	r.Get("/api/v1/calendar/list", calendarController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/calendar/:id", calendarController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/calendar/create", calendarController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Put("/api/v1/calendar/:id", calendarController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Patch("/api/v1/calendar/:id", calendarController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleManager))
	r.Delete("/api/v1/calendar/:id", calendarController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #payslip
	r.Get("/api/v1/payslip/list", payslipController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/payslip/employee/:account_id", payslipController.GetByEmployee, middleware.Authenticate(r.auth))
	r.Get("/api/v1/payslip/:id/pdf", payslipController.DownloadPdf, middleware.Authenticate(r.auth))
	r.Post("/api/v1/payslip/create", payslipController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/payslip/:id", payslipController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #company
	r.Get("/api/v1/company", companyController.GetInfo, middleware.Authenticate(r.auth))
	r.Put("/api/v1/company", companyController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
