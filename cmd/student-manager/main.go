package main

import (
	"fmt"
	"log"
	"runtime"

	"student-manager/internal/config"
	"student-manager/internal/controllers"
	"student-manager/internal/logger"
	"student-manager/internal/models"
	"student-manager/internal/services"
	"student-manager/internal/shutdown"
	"student-manager/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Student Management System"
	AppID      = "com.studentmanager.desktop"
	AppVersion = "1.0.0"
)

// Application owns the registries and wires them to the UI
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	students *models.StudentRegistry
	courses  *models.CourseRegistry

	shutdown *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

// NewApplication creates the registries once and passes them to the controller
func NewApplication(cfg config.Config) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger := logger.New(cfg.LogFormat, cfg.LogLevel)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"log_level":   cfg.LogLevel.String(),
	})

	students := models.NewStudentRegistry()
	courses := models.NewCourseRegistry()
	roster := services.NewRosterService(appLogger)

	mainController := controllers.NewMainController(students, courses, roster, appLogger)
	mainView := views.NewMainView(window)
	mainController.SetMainView(mainView)
	mainController.Start()

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: mainController,
		view:       mainView,
		students:   students,
		courses:    courses,
		shutdown:   shutdownManager,
	}

	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"courses": courses.Len(),
	})

	return application
}

// Run shows the window and blocks in the fyne event loop
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Debug("Application", "window close requested", nil)
		a.view.ShowConfirm("Exit Application", "Are you sure you want to exit? All data will be lost.", func(confirmed bool) {
			if confirmed {
				a.window.Close()
			}
		})
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}
