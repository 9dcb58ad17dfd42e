package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/env"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/framework_gin"
)

func newServeCmd() *cobra.Command {
	var addr, build string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve eval, fn, format, /ping and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.GetenvIsProd() {
				gin.SetMode(gin.ReleaseMode)
			}
			router, shutdownTracer := framework_gin.NewRouter(build)
			defer shutdownTracer(context.Background())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return framework_gin.Serve(ctx, addr, router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&build, "build", "development", "build number reported by /ping")
	return cmd
}
