package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/develop-programs/Glimpse-sub001/internal/auth"
	"github.com/develop-programs/Glimpse-sub001/internal/config"
	"github.com/develop-programs/Glimpse-sub001/internal/history"
	"github.com/develop-programs/Glimpse-sub001/internal/logging"
	"github.com/develop-programs/Glimpse-sub001/internal/server"
)

func main() {
	logging.Init()

	var (
		flagListen  = flag.String("listen", "", "bind address (default :8090)")
		flagSecret  = flag.String("auth-secret", "", "join token secret; empty runs open rooms")
		flagHistory = flag.String("history-dir", "", "chat history directory; empty keeps history in memory")
	)
	flag.Parse()

	cfg, err := config.Load(config.Options{
		ListenAddr: *flagListen,
		AuthSecret: *flagSecret,
		HistoryDir: *flagHistory,
	})
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	var store history.Store
	if cfg.HistoryDir != "" {
		s, err := history.OpenBadger(cfg.HistoryDir)
		if err != nil {
			slog.Error("history open failed", "dir", cfg.HistoryDir, "err", err)
			os.Exit(1)
		}
		defer s.Close()
		store = s
	} else {
		store = history.NewMemoryStore()
	}

	var tokener *auth.Tokener
	if cfg.AuthSecret != "" {
		tokener = auth.NewTokener(cfg.AuthSecret)
	} else {
		slog.Warn("no auth secret configured, rooms are open")
	}

	hub := server.NewHub(tokener, store)
	go hub.Run()

	router := server.NewRouter(hub, tokener)
	slog.Info("signaling server listening", "addr", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
