package main

import (
	"os"

	"github.com/cindyhont/jobly-backend/config"
	"github.com/cindyhont/jobly-backend/database"
	"github.com/cindyhont/jobly-backend/log"
	"github.com/cindyhont/jobly-backend/rest"
	"github.com/cindyhont/jobly-backend/router"
	"github.com/cindyhont/jobly-backend/usermgmt"
)

var cfg *config.Config

func init() {
	var err error
	if cfg, err = config.Load(); err != nil {
		log.Error("config: %v", err)
		os.Exit(1)
	}
	log.SetDebug(cfg.Debug)
	usermgmt.Setup(cfg)
	database.Setup(cfg)
	log.Info("init complete")
}

func main() {
	rest.ListenHTTP()
	if err := router.Listen(cfg); err != nil {
		log.Error("server stopped: %v", err)
		os.Exit(1)
	}
}
