// cmd/server is the entrypoint for one node of a spalhad cluster.
//
// Configuration is entirely via flags plus the SPALHAD_LOG_LEVEL
// environment variable, so a single binary serves any node in a cluster
// described by a shared cluster config file.
//
// Example — three-node cluster, this process is node 0:
//
//	./server --self-id 0 --bind 0.0.0.0:3000 --cluster-config cluster.config.json
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spalhad/kvstore/internal/actorsys"
	"github.com/spalhad/kvstore/internal/bouncer"
	"github.com/spalhad/kvstore/internal/clusterconfig"
	"github.com/spalhad/kvstore/internal/coordinator"
	"github.com/spalhad/kvstore/internal/duration"
	"github.com/spalhad/kvstore/internal/httpserver"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/kverrors"
	"github.com/spalhad/kvstore/internal/logging"
	"github.com/spalhad/kvstore/internal/selfactivate"
	"github.com/spalhad/kvstore/internal/storage"
)

func main() {
	logging.InitFromEnv()

	if err := run(); err != nil {
		logger := logging.WithComponent("main")
		logger.Error().Msg("fatal error")
		for _, line := range kverrors.Trace(err) {
			logger.Error().Str("cause", line).Msg("caused by")
		}
		os.Exit(1)
	}
}

func run() error {
	bind := flag.String("bind", "0.0.0.0:3000", "address to listen on")
	kvChannelSize := flag.Int("kv-channel-size", actorsys.DefaultMailboxSize, "mailbox capacity for every actor in this process")
	persistenceDir := flag.String("persistence-dir", "", "directory for on-disk storage; empty means in-memory")
	clusterConfigPath := flag.String("cluster-config", "cluster.config.json", "path to the cluster configuration file")
	selfID := flag.Int("self-id", -1, "this node's index into the cluster configuration's address list")
	concurrencyLevel := flag.Int("concurrency-level", 8, "max in-flight replica requests for a single write")
	communicationTimeoutFlag := flag.String("communication-timeout", "90s", "timeout for requests to peer nodes (supports ns, us, mcs, ms, s, min)")
	flag.Parse()

	communicationTimeout, err := duration.Parse(*communicationTimeoutFlag)
	if err != nil {
		return fmt.Errorf("parsing --communication-timeout: %w", err)
	}

	cfg, err := clusterconfig.Load(*clusterConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSelfID(*selfID); err != nil {
		return err
	}

	logger := logging.WithNodeID(logging.Logger, *selfID)
	logger.Info().Int("num_nodes", len(cfg.Addresses)).Msg("starting node")

	tm := actorsys.NewTaskManager()

	storageOpts := storage.Options{TaskManager: tm, MailboxSize: *kvChannelSize}

	storageTable := make([]*storage.Handle, len(cfg.Addresses))
	var localStorage *storage.Handle
	for i, addr := range cfg.Addresses {
		if i == *selfID {
			if *persistenceDir == "" {
				localStorage = storage.OpenMemory(storageOpts)
			} else {
				localStorage, err = storage.OpenDir(storageOpts, *persistenceDir)
				if err != nil {
					return err
				}
			}
			storageTable[i] = localStorage
			continue
		}
		storageTable[i] = storage.OpenClient(storageOpts, addr, communicationTimeout)
	}

	coordinatorHandle := coordinator.Open(tm, coordinator.Config{
		Replication:      cfg.Replication,
		MinCorrectReads:  cfg.MinCorrectReads,
		MinCorrectWrites: cfg.MinCorrectWrites,
		ConcurrencyLevel: *concurrencyLevel,
		StorageTable:     storageTable,
	}, *kvChannelSize)

	runID, err := key.NewRunId()
	if err != nil {
		return fmt.Errorf("generating run id: %w", err)
	}
	logger.Info().Str("run_id", runID.String()).Msg("generated run id")

	bouncerHandle := bouncer.Open(tm, runID, localStorage, coordinatorHandle, *kvChannelSize)

	router := httpserver.NewRouter(bouncerHandle, runID)
	srv := &http.Server{
		Addr:         *bind,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", *bind)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", *bind, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("bind", *bind).Msg("listening")
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			serveErr <- fmt.Errorf("serving http: %w", err)
			return
		}
		serveErr <- nil
	}()

	selfActivateErr := make(chan error, 1)
	tm.Go(func(ctx context.Context) error {
		err := selfactivate.Run(ctx, runID, cfg.Addresses[*selfID], communicationTimeout)
		selfActivateErr <- err
		return err
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case err := <-serveErr:
			tm.Cancel()
			return err
		case err := <-selfActivateErr:
			if err != nil {
				tm.Cancel()
				_ = srv.Close()
				return err
			}
			// Activation succeeded; keep serving until shutdown.
		case <-quit:
			logger.Info().Msg("shutdown signal received")
			if err := shutdown(srv, tm); err != nil {
				return err
			}
			logger.Info().Msg("clean shutdown")
			return nil
		}
	}
}

func shutdown(srv *http.Server, tm *actorsys.TaskManager) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)
	tm.Cancel()
	waitErr := tm.WaitAll()

	if shutdownErr != nil {
		return fmt.Errorf("shutting down http server: %w", shutdownErr)
	}
	return waitErr
}
