package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"wizapp/internal/cli/api"
	"wizapp/internal/config"
	"wizapp/internal/model"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить запись (без имени — name=null)"
}
func (itemAddCmd) Usage() string { return "item-add [<name>]" }

type addRequest struct {
	Name *string `json:"name"`
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var req addRequest
	if len(args) == 1 {
		name := args[0]
		req.Name = &name
	}
	body, err := api.PostJSON(ctx, api.Endpoint(cfg.ServerURL, "/items"), req)
	if err != nil {
		return err
	}
	var it model.Item
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", it.ID)
	fmt.Fprintf(Out, "  name: %s\n", displayName(it.Name))
	fmt.Fprintf(Out, "  date: %s\n", it.Date.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
