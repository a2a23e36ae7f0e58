package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/config"
	"github.com/thatcatcamp/twtheme/internal/middleware"
	"github.com/thatcatcamp/twtheme/internal/server"
	"github.com/thatcatcamp/twtheme/internal/themes"
	"github.com/thatcatcamp/twtheme/internal/ui"
	"github.com/thatcatcamp/twtheme/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the theme development server",
	Long: `Serve the generated theme to a bundler dev session. Stylesheets with
static overrides and the config file are watched; changes regenerate the
theme and notify /ws clients.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := loadPlugin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = config.GetString("server.addr")
		}

		if err := p.BuildStart(); err != nil {
			ui.LogStatus("warning", fmt.Sprintf("failed to write theme.css: %v", err))
		}

		allowed := config.GetStringSlice("server.allowed_cidrs")
		if _, err := middleware.ParseCIDRs(allowed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: server.allowed_cidrs: %v\n", err)
			os.Exit(1)
		}

		gin.SetMode(gin.ReleaseMode)
		srv := server.New(p,
			server.WithAllowedCIDRs(allowed),
			server.WithAllowOrigin(config.GetString("server.allow_origin")),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		files := p.Options().OverrideFiles
		if len(files) == 0 {
			files = themes.DefaultOverrideFiles
		}
		files = append(append([]string(nil), files...), configPath())

		watcher, err := watch.New(files, watch.DefaultDebounce, func(path string) {
			next, err := loadPlugin()
			if err != nil {
				ui.LogStatus("error", fmt.Sprintf("reload failed: %v", err))
				return
			}
			if err := next.BuildStart(); err != nil {
				ui.LogStatus("warning", fmt.Sprintf("failed to write theme.css: %v", err))
			}
			srv.Reload(next)
			ui.LogStatus("info", fmt.Sprintf("%s changed, theme reloaded", path))
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := watcher.Start(ctx); err != nil {
			ui.LogStatus("warning", fmt.Sprintf("file watching disabled: %v", err))
		}
		defer watcher.Stop()

		httpServer := &http.Server{
			Addr:    addr,
			Handler: srv.Router(),
		}

		go func() {
			<-ctx.Done()
			srv.Hub().Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown: %v", err)
			}
		}()

		ui.LogStatus("success", fmt.Sprintf("serving theme on %s", addr))
		ui.LogItem("stylesheet", "/theme.css")
		ui.LogItem("virtual module", "/@id/virtual:tailwind-theme-colors")
		ui.LogItem("live reload", "/ws")
		for _, dir := range watcher.Dirs() {
			ui.LogItem("watching", dir)
		}

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from server.addr)")
	rootCmd.AddCommand(serveCmd)
}
