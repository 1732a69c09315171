package internal

import (
	"io"
	"ticketcounter/internal/controllers"
	"ticketcounter/internal/providers"
	"ticketcounter/internal/services"
	"ticketcounter/internal/storage"
	"ticketcounter/internal/structures"
)

type App struct {
	Conf    *structures.Config
	Logger  providers.Logger
	Store   storage.StorageInterface
	Service services.ActivityLogInterface
}

func NewApp(conf *structures.Config, logger providers.Logger, store storage.StorageInterface, service services.ActivityLogInterface) *App {
	logger.Debugf(providers.TypeApp, "Starting %s with document %s", conf.AppName, conf.Persistence.FilePath)
	return &App{
		Conf:    conf,
		Logger:  logger,
		Store:   store,
		Service: service,
	}
}

// Controller loads the document and binds it to the given terminal streams.
func (a *App) Controller(in io.Reader, out io.Writer) *controllers.CommandController {
	return controllers.NewCommandController(a.Service, a.Store, a.Logger, in, out)
}

func (a *App) Close() {
	a.Logger.Close()
}
