package commands

import (
	"context"

	"wizapp/internal/cli/api"
	"wizapp/internal/config"
)

type verifyCmd struct{}

func (verifyCmd) Name() string        { return "verify" }
func (verifyCmd) Description() string { return "Скачать wizexercise.txt с сервера" }
func (verifyCmd) Usage() string       { return "verify" }

func (verifyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/wizexercise.txt"))
	if err != nil {
		return err
	}
	_, err = Out.Write(body)
	return err
}

func init() { RegisterCmd(verifyCmd{}) }
