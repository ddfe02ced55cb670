package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nayan-navghane/School-application/app/access"
	"github.com/Nayan-navghane/School-application/app/auth"
	"github.com/Nayan-navghane/School-application/app/blob"
	"github.com/Nayan-navghane/School-application/app/config"
	"github.com/Nayan-navghane/School-application/app/mail"
	"github.com/Nayan-navghane/School-application/app/repo"
	"github.com/Nayan-navghane/School-application/app/reports"
	"github.com/Nayan-navghane/School-application/app/routes/attendance"
	authroutes "github.com/Nayan-navghane/School-application/app/routes/auth"
	"github.com/Nayan-navghane/School-application/app/routes/exams"
	"github.com/Nayan-navghane/School-application/app/routes/fees"
	"github.com/Nayan-navghane/School-application/app/routes/settings"
	"github.com/Nayan-navghane/School-application/app/routes/staff"
	"github.com/Nayan-navghane/School-application/app/routes/students"
	"github.com/Nayan-navghane/School-application/app/routes/teachers"
	"github.com/Nayan-navghane/School-application/app/store"
	"github.com/Nayan-navghane/School-application/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	zapLogger, err := logger.New(&cfg.Log, logger.DefaultServiceName)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	var docs store.Store
	switch cfg.StoreDriver {
	case "memory":
		docs = store.NewMemory()
		zapLogger.Info("using in-memory document store")
	default:
		pg, err := store.OpenPostgres(cfg.DB)
		if err != nil {
			zapLogger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.RunMigrations(); err != nil {
			zapLogger.Fatal("failed to run migrations", zap.Error(err))
		}
		docs = pg
		zapLogger.Info("database connected and migrated")
	}

	blobs, err := blob.NewDisk(cfg.FilesDir, cfg.FilesURL)
	if err != nil {
		zapLogger.Fatal("failed to init blob storage", zap.Error(err))
	}
	sink, err := reports.NewFileSink(cfg.ReportsDir, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to init report sink", zap.Error(err))
	}

	var mailer mail.Service = &mail.Console{Logger: zapLogger}
	if cfg.SendgridKey != "" {
		mailer = mail.NewSendgrid(cfg.SendgridKey, cfg.AppName, cfg.MailFrom)
	}

	provider := auth.NewStoreProvider(docs)
	authSvc := auth.NewService(provider, docs, zapLogger)
	authSvc.Start(context.Background())

	studentsRepo := repo.New(docs, store.Students, access.SectionStudents, zapLogger)
	teachersRepo := repo.New(docs, store.Teachers, access.SectionTeachers, zapLogger)
	salariesRepo := repo.New(docs, store.Salaries, access.SectionTeachers, zapLogger)
	staffRepo := repo.New(docs, store.Staff, access.SectionStaff, zapLogger)
	feesRepo := repo.New(docs, store.FeeStructures, access.SectionFees, zapLogger)
	paymentsRepo := repo.New(docs, store.Payments, access.SectionFees, zapLogger)
	examsRepo := repo.New(docs, store.Exams, access.SectionExams, zapLogger)
	marksRepo := repo.New(docs, store.Marks, access.SectionExams, zapLogger)
	attendanceRepo := repo.NewAttendance(repo.New(docs, store.Attendance, access.SectionAttendance, zapLogger))
	settingsRepo := repo.NewSettings(repo.New(docs, store.Settings, access.SectionSettings, zapLogger))

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	app.Static(cfg.FilesURL, cfg.FilesDir)

	authed := authroutes.RequireAuth([]byte(cfg.JWTSecret))

	authroutes.SetupRoutes(app, &authroutes.Handler{Service: authSvc, Config: cfg, Logger: zapLogger})
	students.SetupRoutes(app, authed, &students.Handler{Repo: studentsRepo, Blobs: blobs, Sink: sink, Logger: zapLogger})
	teachers.SetupRoutes(app, authed, &teachers.Handler{Repo: teachersRepo, Salaries: salariesRepo, Blobs: blobs, Logger: zapLogger})
	staff.SetupRoutes(app, authed, &staff.Handler{Repo: staffRepo, Blobs: blobs, Logger: zapLogger})
	fees.SetupRoutes(app, authed, &fees.Handler{
		Structures: feesRepo,
		Payments:   paymentsRepo,
		Sink:       sink,
		Mailer:     mailer,
		ReceiptsTo: cfg.ReceiptsTo,
		Logger:     zapLogger,
	})
	exams.SetupRoutes(app, authed, &exams.Handler{Repo: examsRepo, Marks: marksRepo, Blobs: blobs, Sink: sink, Logger: zapLogger})
	attendance.SetupRoutes(app, authed, &attendance.Handler{Repo: attendanceRepo, Logger: zapLogger})
	settings.SetupRoutes(app, authed, &settings.Handler{Repo: settingsRepo, Blobs: blobs, Logger: zapLogger})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	zapLogger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

// errorHandler keeps API responses as a single JSON error body and
// renders the error page for everything else.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}
