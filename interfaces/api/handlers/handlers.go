package handlers

import (
	"family-planner/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService      services.TaskService
	BootstrapService services.BootstrapService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler      *TaskHandler
	BootstrapHandler *BootstrapHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:      NewTaskHandler(services.TaskService),
		BootstrapHandler: NewBootstrapHandler(services.BootstrapService),
	}
}
