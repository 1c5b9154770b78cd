package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"wizapp/internal/config"
)

// ProgramName имя бинарника клиента, собирается из cmd/wizctl.
const ProgramName = "wizctl"

// ErrUsage возвращается командой при неверных аргументах: диспетчер печатает Usage.
var ErrUsage = errors.New("usage")

// Command подкоманда wizctl.
type Command interface {
	// Name имя команды в командной строке, например "items".
	Name() string
	// Description краткое описание для справки.
	Description() string
	// Usage строка использования, например "item-add [<name>]".
	Usage() string
	// Run выполняет команду; args без имени самой команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, в тестах подменяется.
var Out io.Writer = os.Stdout

// RegisterCmd добавляет команду в реестр. Вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get ищет команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает зарегистрированные команды в алфавитном порядке.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку по всем командам.
func FormatGlobalUsage() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "wizapp CLI\n\nUsage:\n  %s [-server URL] <command> [args]\n\nCommands:\n", ProgramName)
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, c := range List() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Usage(), c.Description())
	}
	_ = tw.Flush()
	fmt.Fprintf(&buf, "\nRun '%s help <command>' for command usage.\n", ProgramName)
	return buf.String()
}
