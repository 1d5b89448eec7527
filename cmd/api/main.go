package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodrepublic/internal/config"
	"foodrepublic/internal/db"
	"foodrepublic/internal/httpserver"
	invoicerepo "foodrepublic/internal/repository/invoice"
	memberrepo "foodrepublic/internal/repository/member"
	menurepo "foodrepublic/internal/repository/menu"
	tablerepo "foodrepublic/internal/repository/table"
	userrepo "foodrepublic/internal/repository/user"
	invoicesvc "foodrepublic/internal/service/invoice"
	membersvc "foodrepublic/internal/service/member"
	menusvc "foodrepublic/internal/service/menu"
	tablesvc "foodrepublic/internal/service/table"
	usersvc "foodrepublic/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	tableService := tablesvc.New(tablerepo.NewPostgres(dbpool, logger))
	menuService := menusvc.New(menurepo.NewPostgres(dbpool, logger))
	userService := usersvc.New(userrepo.NewPostgres(dbpool, logger))
	memberService := membersvc.New(memberrepo.NewPostgres(dbpool, logger))
	invoiceService := invoicesvc.New(invoicerepo.NewPostgres(dbpool, logger))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Tables:   tableService,
		Menu:     menuService,
		Users:    userService,
		Members:  memberService,
		Invoices: invoiceService,
	}, cfg.CORSAllowOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
