package main

import (
	"fmt"
	"os"
	"time"

	"github.com/n8nops/n8nops/config"
	"github.com/n8nops/n8nops/executor"
	"github.com/n8nops/n8nops/log"
	n8nmcp "github.com/n8nops/n8nops/mcp"
	"github.com/n8nops/n8nops/n8n"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	containerFlag string

	rootCmd = &cobra.Command{
		Use:   "n8nops",
		Short: "n8nops - manage n8n workflows in Docker over MCP",
		Long: "n8nops serves a Model Context Protocol interface on stdio that exposes " +
			"Docker/n8n workflow management: listing, updating, backing up, restarting, " +
			"and troubleshooting workflows inside an n8n container.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flag overrides config (which already honors N8N_CONTAINER_NAME).
			container := cfg.ContainerName
			if containerFlag != "" {
				container = containerFlag
			}

			client, err := n8n.NewClient(container, executor.NewExecRunner())
			if err != nil {
				return err
			}
			client.SetRestartWait(time.Duration(cfg.RestartWaitSeconds) * time.Second)
			client.SetLogTail(cfg.LogTailLines)

			n8nmcp.SetLogger(log.FileLogger("MCP:"))
			log.InfoLog.Printf("serving MCP on stdio (container=%s)", container)

			srv := n8nmcp.NewServer(client)
			return srv.Serve()
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("n8nops version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&containerFlag, "container", "c", "",
		"Name of the Docker container running n8n (overrides config and N8N_CONTAINER_NAME)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
