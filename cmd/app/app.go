package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MuchYouth/otgil-Re-Thread/internal/api"
	"github.com/MuchYouth/otgil-Re-Thread/internal/config"
	"github.com/MuchYouth/otgil-Re-Thread/internal/logger"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	st := store.New()
	if conf.API.SeedDemoData {
		if err = store.Seed(st); err != nil {
			return fmt.Errorf("failed to seed demo data -> %w", err)
		}
	}

	s := api.NewServer(conf, st)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
