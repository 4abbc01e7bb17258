package main

import (
	"os"
	"rideflow/config"
	"rideflow/helper"
	"rideflow/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func command(name, usage string, run func(*config.Config) error) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(_ *cli.Context) error {
			return run(config.Get())
		},
	}
}

func main() {
	logger.InitLogger()

	app := &cli.App{
		Name:  "migrate",
		Usage: "Apply or roll back the Postgres schema in migrations/postgres",
		Commands: []*cli.Command{
			command("up", "apply every pending migration", helper.Up),
			command("down", "roll back the latest migration", helper.Down),
			command("step-up", "apply the next pending migration", helper.StepUp),
			command("drop", "drop every object in the schema", helper.Drop),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
