package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financial_planner/pkg/api"
	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/config"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/prompt"
	"financial_planner/pkg/core/store"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	configPath := flag.String("config", config.DefaultPath, "path to the planner config file")
	resourcesPath := flag.String("resources", "resources", "directory holding prompts/")
	flag.Parse()
	defer klog.Flush()

	// Load environment variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		klog.Warningf("[CONFIG] failed to load .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		klog.Fatalf("[CONFIG] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := store.Open(ctx, cfg.Store)
	if err != nil {
		klog.Fatalf("[STORE] %v", err)
	}
	defer repo.Close()

	prompts, err := prompt.LoadDir(*resourcesPath)
	if err != nil {
		klog.Warningf("[PROMPT] %v; falling back to built-in prompts", err)
	} else {
		klog.Infof("[PROMPT] loaded %d prompts from %s", prompts.Count(), *resourcesPath)
	}

	agentMgr := agent.NewManager(cfg.Agents)
	engine := projection.NewEngine(projection.Options{Strict: cfg.Validation.Strict})

	router := api.NewRouter(api.Deps{
		Repo:        repo,
		Engine:      engine,
		Agents:      agentMgr,
		Advisor:     advisor.New(agentMgr).WithPrompts(prompts),
		CORSOrigins: cfg.Server.CORSOrigins,
		ListLimit:   cfg.Store.ListLimit,
		Strict:      cfg.Validation.Strict,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			klog.Errorf("[API] shutdown: %v", err)
		}
	}()

	klog.Infof("[API] server starting on %s (store=%s, provider=%s, strict=%v)",
		cfg.Server.Addr, repo.Driver(), agentMgr.GetActiveProvider(), cfg.Validation.Strict)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		klog.Errorf("[API] server failed: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Info("[API] server stopped")
}
