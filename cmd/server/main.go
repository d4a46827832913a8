// Command server 运行看板轮播服务，并提供曝光计数重置的一次性任务入口。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version 在构建时通过 -ldflags 注入。
var Version = "dev"

func main() {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "board-rotation",
		Short:         "Weighted pin rotation for local business boards",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to YAML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(resetImpressionsCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
