package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"lottotrack/cmd"
	"lottotrack/config"
	"lottotrack/database"

	log "github.com/sirupsen/logrus"
)

const usage = `usage:
  lottotrack                              serve the HTTP API
  lottotrack migrate up|down [n]|status   manage the database schema
  lottotrack import [--refresh] <csv>...  load historical draws`

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("Failed to load .env: ", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch {
	case len(os.Args) > 1 && os.Args[1] == "migrate":
		err = handleMigrationCommand(os.Args[2:])
	case len(os.Args) > 1 && os.Args[1] == "import":
		err = handleImportCommand(ctx, os.Args[2:])
	case len(os.Args) > 1 && (os.Args[1] == "help" || os.Args[1] == "-h" || os.Args[1] == "--help"):
		fmt.Println(usage)
	case len(os.Args) > 1:
		err = fmt.Errorf("unknown command %q\n%s", os.Args[1], usage)
	default:
		err = cmd.Run(ctx)
	}

	if err != nil {
		log.Fatal("Application error: ", err)
	}
}

func handleMigrationCommand(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: lottotrack migrate up|down [n]|status")
	}

	databaseURL := config.Get().GetDatabaseURL()
	switch args[0] {
	case "up":
		return database.MigrateUp(databaseURL)
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			steps = n
		}
		return database.MigrateDown(databaseURL, steps)
	case "status":
		status, err := database.MigrateStatus(databaseURL)
		if err != nil {
			return err
		}
		if !status.Applied {
			fmt.Println("No migrations applied")
			return nil
		}
		fmt.Printf("Version: %d, dirty: %t\n", status.Version, status.Dirty)
		return nil
	default:
		return fmt.Errorf("unknown migration command: %s", args[0])
	}
}

func handleImportCommand(ctx context.Context, args []string) error {
	var refresh bool
	var paths []string
	for _, arg := range args {
		if arg == "--refresh" {
			refresh = true
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		return fmt.Errorf("usage: lottotrack import [--refresh] <csv>...")
	}
	return cmd.Import(ctx, paths, refresh)
}
