package commands

import (
	"context"
	"fmt"
	"strings"

	"wizapp/internal/cli/api"
	"wizapp/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Проверить, что сервер отвечает" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/"))
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Status:", strings.TrimSpace(string(body)))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
