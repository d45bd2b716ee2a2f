package main

import (
	"Couture/config"
	"Couture/dao"
	"Couture/pkg/database"
	"Couture/pkg/log"
	"Couture/pkg/server"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)

	var cfg *config.Config
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "Life Couture store backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: path, Usage: "config file"},
		},
		Before: func(ctx *cli.Context) error {
			cfg = config.New(ctx.String("config"))
			log.SetLevel(cfg.Log.Level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					if cfg.Jwt.Secret == "" {
						return errors.New("jwt secret is not configured (jwt.secret or JWT_SECRET)")
					}
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := dao.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
