package main

import (
	"time"

	"github.com/lox/pokerhint/internal/predict"
	"github.com/lox/pokerhint/internal/server"
)

// ServeCmd runs the evaluation service until interrupted.
type ServeCmd struct {
	Addr        string        `short:"a" help:"Listen address (overrides config)"`
	IdleTimeout time.Duration `help:"Close connections idle this long (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	addr := cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}
	idle := cfg.IdleTimeout()
	if c.IdleTimeout > 0 {
		idle = c.IdleTimeout
	}

	pc, err := predict.Load(cfg, logger)
	if err != nil {
		return err
	}
	if !pc.HasHinted() {
		logger.Warn("No hinted model configured, predict requests will fail")
	}

	srv := server.NewServer(logger,
		server.WithPredictor(pc),
		server.WithIdleTimeout(idle),
	)

	ctx, cancel := SetupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting pokerhint server", "addr", addr, "idle_timeout", idle)
	return srv.ListenAndServe(ctx, addr)
}
