package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"wizapp/internal/cli/api"
	"wizapp/internal/config"
	"wizapp/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все записи"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	body, err := api.Get(ctx, api.Endpoint(cfg.ServerURL, "/items"))
	if err != nil {
		return err
	}
	var list []model.Item
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %s  name=%s  date=%s\n", it.ID, displayName(it.Name), it.Date.Format("2006-01-02T15:04:05Z07:00"))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func displayName(name *string) string {
	if name == nil {
		return "<null>"
	}
	return fmt.Sprintf("%q", *name)
}

func init() { RegisterCmd(itemsCmd{}) }
