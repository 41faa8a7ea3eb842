package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockdrop/internal/netclient"
	"github.com/hersh/blockdrop/internal/tui"
)

func main() {
	serverAddr := flag.String("server", "ws://localhost:8080/ws", "spectator WebSocket address of a running game")
	logPath := flag.String("log", "blockdrop-watch.log", "log file path")
	flag.Parse()

	logFile, err := tea.LogToFile(*logPath, "watch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	client, err := netclient.New(*serverAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to game at %s: %v\n", *serverAddr, err)
		fmt.Fprintf(os.Stderr, "Make sure the game is running with -serve (go run . -serve :8080)\n")
		os.Exit(1)
	}
	defer client.Close()

	p := tea.NewProgram(tui.NewWatchModel(), tea.WithAltScreen())

	// Wire the program into the client so readPump can send tea.Msgs
	client.SetProgram(p)
	client.Start()
	slog.Info("watching", "server", *serverAddr)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
