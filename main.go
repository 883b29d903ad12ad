package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-library/apis"
	booksAPI "github.com/supakorn-kn/go-library/apis/books"
	membersAPI "github.com/supakorn-kn/go-library/apis/members"
	"github.com/supakorn-kn/go-library/env"
	"github.com/supakorn-kn/go-library/models/catalog"
	"github.com/supakorn-kn/go-library/mongodb"
	"github.com/supakorn-kn/go-library/shell"
	"github.com/supakorn-kn/go-library/storage"
	"github.com/supakorn-kn/go-library/storage/jsonfile"
	"github.com/supakorn-kn/go-library/storage/mongostore"
)

func main() {

	//slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(); err != nil {
		slog.Error("Library stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {

	config, err := env.GetEnv()
	if err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(config)
	if err != nil {
		return err
	}

	defer closeStore()

	repo := storage.NewRepository(store, slog.Default())
	c := repo.Load(ctx)

	if config.Mode == env.ServerMode {
		return serve(ctx, config.Server, c, repo)
	}

	err = shell.New(c, repo, os.Stdin, os.Stdout).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func openStore(config *env.Env) (storage.Store, func(), error) {

	if config.Storage.Driver != env.MongoDBStorageDriver {
		slog.Info("Using JSON file storage", "path", config.Storage.Path)
		return jsonfile.New(config.Storage.Path), func() {}, nil
	}

	conn, err := mongodb.InitConnection(config.MongoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("create MongoDB connection: %w", err)
	}

	store, err := mongostore.New(conn)
	if err != nil {
		conn.Disconnect()
		return nil, nil, fmt.Errorf("create MongoDB store: %w", err)
	}

	slog.Info("Using MongoDB storage", "host", config.MongoDB.Host, "db", config.MongoDB.DB)

	return store, func() {
		if err := conn.Disconnect(); err != nil {
			slog.Error("Disconnect MongoDB failed", "error", err)
		}
	}, nil
}

func serve(ctx context.Context, config env.ServerConfig, c *catalog.Catalog, saver apis.Saver) error {

	library := apis.NewLibrary(c, saver)

	g := gin.Default()
	g.Use(apis.RequestIDMiddleware())
	apis.RegisterBooksAPI(booksAPI.NewBooksAPI(library), g.Group("api/books"))
	apis.RegisterMembersAPI(membersAPI.NewMembersAPI(library), g.Group("api/members"))
	apis.RegisterSummaryAPI(library, g.Group("api/summary"))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: g,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Library server started", "addr", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("run server: %w", err)
		}

		return nil

	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("Shutting down library server")
	return server.Shutdown(shutdownCtx)
}
