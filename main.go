package main

import (
	"flag"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeseoLee/janggi-sub000/internal/config"
	"github.com/yeseoLee/janggi-sub000/internal/engine"
	"github.com/yeseoLee/janggi-sub000/internal/handlers"
	"github.com/yeseoLee/janggi-sub000/internal/logging"
	"github.com/yeseoLee/janggi-sub000/internal/match"
	"github.com/yeseoLee/janggi-sub000/internal/storage"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := config.Load()
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init(cfg.Debug); err != nil {
		log.Fatalf("logging init: %v", err)
	}
	defer logging.Sync()

	var store *storage.Store
	if cfg.PostgresDSN != "" {
		db, err := storage.New(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("storage init: %v", err)
		}
		store = storage.NewStore(db)
	} else {
		logging.Infof("no postgres DSN configured, outcomes will not be persisted")
	}

	reg := match.NewRegistry(store)
	eng := engine.NewRandom(uint64(time.Now().UnixNano()))
	engCfg := engine.Request{
		Depth:    cfg.Engine.Depth,
		MoveTime: time.Duration(cfg.Engine.MoveTime) * time.Millisecond,
	}

	h := handlers.NewHandler(reg, store, eng, engCfg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	h.Routes(router)

	logging.Infof("janggi server %s (%s) listening on %s", commit, buildDate, cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
