package menu

import (
	"bufio"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"service-menu/internal/logger"
)

// Run drives the interactive session: show the menu full screen, run the
// chosen action with the terminal back in its normal state, wait for an
// acknowledging keypress, then show the menu again. It returns when the
// user picks Exit or presses Escape.
func Run(items []Item) error {
	for {
		p := tea.NewProgram(NewModel(items), tea.WithAltScreen())
		result, err := p.Run()
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		m, ok := result.(Model)
		if !ok || m.choice == nil {
			return nil
		}

		// The alt screen is released here, so the action's output lands
		// on the normal terminal like any other command.
		item := *m.choice
		fmt.Printf("Running: %s\n", item.Label)
		if item.Action != nil {
			item.Action()
		}
		fmt.Println("Press any key to return to the menu...")
		waitKey()
	}
}

// waitKey blocks until a single key is pressed. When stdin is not a
// terminal, or raw mode is unavailable, it falls back to reading a line.
func waitKey() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		readLine()
		return
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Debug("[DEBUG] Raw mode unavailable: %v\n", err)
		readLine()
		return
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)
}

func readLine() {
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
