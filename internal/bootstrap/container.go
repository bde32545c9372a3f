package bootstrap

import (
	"notekeeper-be/internal/config"
	"notekeeper-be/internal/controller"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/service"
	"notekeeper-be/pkg/cache"

	"gorm.io/gorm"
)

type Container struct {
	NoteController     controller.INoteController
	TaskController     controller.ITaskController
	InternalController controller.IInternalController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cacheClient cache.Client, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.LogLevel, cfg.App.Environment == "production")

	noteService := service.NewNoteService(uowFactory)
	taskService := service.NewTaskService(uowFactory)
	internalService := service.NewInternalService(uowFactory)

	return &Container{
		NoteController:     controller.NewNoteController(noteService),
		TaskController:     controller.NewTaskController(taskService),
		InternalController: controller.NewInternalController(internalService, cacheClient),
		Logger:             sysLogger,
	}
}
