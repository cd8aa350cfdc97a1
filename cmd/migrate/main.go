// Command migrate manages the MySQL schema with the SQL files embedded from
// the migrations package.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"github.com/gradsite/modteam/internal/pkg/database"
	"github.com/gradsite/modteam/internal/pkg/env"
	"github.com/gradsite/modteam/migrations"
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	env.SetupEnvFile()
	log.Printf("Database %s@%s:%s/%s",
		env.GetEnv("DB_USER", "modteam"),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", "modteam"),
	)

	m, err := database.NewMigrator(migrations.FS, database.MigrationURL())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			log.Printf("Failed to close migration resources: %v, %v", sourceErr, dbErr)
		}
	}()

	if err := run(m, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(m *migrate.Migrate, command string, args []string) error {
	switch command {
	case "up":
		return report(m.Up(), "all migrations applied")
	case "down":
		n, err := intArg(args, 1)
		if err != nil {
			return err
		}
		return report(m.Steps(-n), fmt.Sprintf("rolled back %d migration(s)", n))
	case "goto":
		v, err := intArg(args, -1)
		if err != nil {
			return err
		}
		return report(m.Migrate(uint(v)), fmt.Sprintf("at version %d", v))
	case "force":
		v, err := intArg(args, -1)
		if err != nil {
			return err
		}
		return report(m.Force(v), fmt.Sprintf("version forced to %d", v))
	case "status":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("No migrations applied yet")
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("Version %d (dirty: %t)", version, dirty)
		return nil
	}
	return fmt.Errorf("unknown command %q, run with -h for usage", command)
}

// report treats ErrNoChange as success.
func report(err error, done string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("No change")
		return nil
	}
	if err != nil {
		return err
	}
	log.Println(done)
	return nil
}

// intArg parses the first positional argument; def < 0 makes it required.
func intArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		if def < 0 {
			return 0, errors.New("missing version argument")
		}
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", args[0])
	}
	return n, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [arg]

Commands:
  up         apply all pending migrations
  down [N]   roll back N migrations (default 1)
  goto V     migrate up or down to version V
  force V    set version V without running migrations (clears the dirty flag)
  status     print the current version`)
}
