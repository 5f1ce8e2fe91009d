package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/intra-logtime/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"logtime-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterIntraTools(s, cfg)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
