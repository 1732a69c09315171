//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"ticketcounter/internal"
	"ticketcounter/internal/export"
	"ticketcounter/internal/providers"
	"ticketcounter/internal/services"
	"ticketcounter/internal/storage"
	"ticketcounter/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,

		storage.NewZstdCompressor,
		storage.NewFileManager,
		export.NewCsvExporter,
		services.NewActivityLog,
		internal.NewApp,
	)

	return nil, nil
}
