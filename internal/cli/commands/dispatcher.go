package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wizapp/internal/cli/api"
	"wizapp/internal/config"
)

// Коды выхода wizctl.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Dispatch выполняет команду из args (глобальные флаги уже разобраны config.NewConfig)
// и возвращает код выхода процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "-h", "--help":
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	case "help": // wizctl help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
		return commandHelp(args[1])
	}

	c, ok := Get(name)
	if !ok {
		return unknownCommand(name)
	}
	// wizctl items -h
	if len(args) > 1 && isHelpFlag(args[1]) {
		fmt.Fprintf(Out, "Usage: %s %s\n", ProgramName, c.Usage())
		return ExitOK
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s %s\n", ProgramName, c.Usage())
		return ExitUsage
	default:
		fmt.Fprintf(Out, "%s error: %s\n", name, describeError(err))
		return ExitError
	}
}

func commandHelp(name string) int {
	c, ok := Get(strings.ToLower(name))
	if !ok {
		return unknownCommand(name)
	}
	fmt.Fprintf(Out, "Usage: %s %s\n  %s\n", ProgramName, c.Usage(), c.Description())
	return ExitOK
}

func unknownCommand(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}

func isHelpFlag(a string) bool {
	return a == "-h" || a == "--help"
}

// describeError показывает пользователю message из ответа сервера вместо сырого тела.
func describeError(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("server returned %d: %s", se.Code, se.Message())
	}
	return err.Error()
}
