// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container; storage opens once flags are parsed
	container := app.New(cwd, stderr)
	defer func() {
		err = errors.Join(err, container.Close())
	}()

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(cli.PositionalNegatives(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}
