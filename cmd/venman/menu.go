package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/service"
)

const boardWidth = 34

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(bannerEnd.hex()))

var menuItems = []string{"Create Venv", "Enter Venv", "List Venv", "Delete Venv", "Quit"}

var menuPrompt = "╰" + strings.Repeat("─", 18)

// menuBoard draws the boxed main menu.
func menuBoard() string {
	heavy := strings.Repeat("━", boardWidth)
	light := strings.Repeat("─", boardWidth)
	row := func(s string) string {
		return "┃" + fmt.Sprintf(" %-*s", boardWidth-1, s) + "┃"
	}

	title := "VENMAN - " + Version
	if pad := (boardWidth - len([]rune(title))) / 2; pad > 0 {
		title = strings.Repeat(" ", pad) + title
	}

	lines := []string{
		"┏" + heavy + "┓",
		"┃" + fmt.Sprintf("%-*s", boardWidth, title) + "┃",
		"┣" + heavy + "┫",
	}
	for i, item := range menuItems {
		lines = append(lines, row(fmt.Sprintf("[%d] %s", i+1, item)))
		if i < len(menuItems)-1 {
			lines = append(lines, "┠"+light+"┨")
		}
	}
	lines = append(lines, "┗"+heavy+"┛")
	return strings.Join(lines, "\n")
}

// menu is the interactive loop shown when venman runs without a command.
type menu struct {
	svc    *service.RegistryService
	p      *prompter
	stdin  io.Reader
	out    io.Writer
	errOut io.Writer
	clear  bool
}

func runMenu(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	m := &menu{
		svc:    svc,
		p:      newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		stdin:  cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		clear:  isTerminal(cmd.OutOrStdout()),
	}
	return m.run(cmd.Context())
}

// run shows the menu until Quit is chosen or input ends. Operation errors are
// printed and the loop continues.
func (m *menu) run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		printGradient(m.out, menuBoard(), bannerStart, bannerEnd)

		choice, err := m.p.ask(promptStyle.Render(menuPrompt) + "$ ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			m.clearScreen()
			err = m.create(ctx)
		case "2":
			err = m.enter(ctx)
		case "3":
			m.clearScreen()
			err = m.list()
		case "4":
			err = m.delete(ctx)
		case "5":
			return nil
		default:
			m.clearScreen()
			continue
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			fmt.Fprintln(m.errOut, errorStyle.Render(err.Error()))
		}
	}
}

func (m *menu) create(ctx context.Context) error {
	req, err := promptCreate(m.p)
	if err != nil {
		return err
	}
	return createEnv(ctx, m.svc, m.out, req)
}

func (m *menu) enter(ctx context.Context) error {
	m.clearScreen()
	if err := m.list(); err != nil {
		return err
	}
	name, err := m.p.ask("Choose a VENV > ")
	if err != nil {
		return err
	}
	return activateEnv(ctx, m.svc, name, m.shellInput(), m.out, m.errOut)
}

// shellInput returns the reader handed to the activation shell. A terminal
// is passed through so the shell owns it; piped input continues from the
// prompter's buffer, which may already hold lines meant for the shell.
func (m *menu) shellInput() io.Reader {
	if isTerminal(m.stdin) {
		return m.stdin
	}
	return m.p.in
}

func (m *menu) list() error {
	result, err := m.svc.List()
	if err != nil {
		return err
	}
	printCards(m.out, result)
	return nil
}

func (m *menu) delete(ctx context.Context) error {
	m.clearScreen()
	if err := m.list(); err != nil {
		return err
	}
	name, err := m.p.ask("Choose a VENV to delete > ")
	if err != nil {
		return err
	}
	return deleteEnv(ctx, m.svc, m.p, m.out, name, false)
}

func (m *menu) clearScreen() {
	if m.clear {
		fmt.Fprint(m.out, "\x1b[2J\x1b[1;1H")
	}
}
