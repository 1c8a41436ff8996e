package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/lookup"
	"github.com/efrogs/rarity/internal/ui"
)

const shellPrompt = "efrog> "

// maxShellLine bounds a single input line. Longer lines end the session.
const maxShellLine = 1 << 20

// shellSession is one interactive lookup session. The info overlay is
// toggled independently of the lookup state.
type shellSession struct {
	ctrl     *lookup.Controller
	in       io.Reader
	out      io.Writer
	prompt   bool
	width    int
	showInfo bool
}

func newShellSession(finder lookup.Finder, in io.Reader, out io.Writer) *shellSession {
	return &shellSession{
		ctrl:  lookup.NewController(finder),
		in:    in,
		out:   out,
		width: ui.NewDisplayContext().CardWidth(),
	}
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Look up items interactively",
	Long: `Starts an interactive session. Each line is looked up as an item id.

Commands:
  :info   show or hide rarity information
  :help   list commands
  :quit   leave the shell (or press Ctrl-D)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newShellSession(getDataset(), cmd.InOrStdin(), os.Stdout)
		s.prompt = !isJSONOutput() && isInteractive(os.Stdin)
		if err := s.run(); err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		return nil
	},
}

func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run reads lines until :quit or EOF.
func (s *shellSession) run() error {
	s.banner()

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxShellLine)
	for {
		if s.prompt {
			fmt.Fprint(s.out, ui.AccentBold.Render(shellPrompt))
		}
		if !scanner.Scan() {
			break
		}
		if quit := s.handleLine(strings.TrimSuffix(scanner.Text(), "\r")); quit {
			return nil
		}
	}
	if s.prompt {
		fmt.Fprintln(s.out)
	}
	return scanner.Err()
}

// handleLine processes one line and reports whether the session should end.
func (s *shellSession) handleLine(line string) bool {
	if cmd, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
		return s.command(strings.ToLower(cmd))
	}

	err := s.ctrl.Search(line)
	logger.WithComponent("shell").Debug("search", "query", line, "state", s.ctrl.State().String(), "error", err)
	writeLookup(s.out, s.ctrl, s.width)
	return false
}

func (s *shellSession) command(name string) bool {
	switch name {
	case "q", "quit", "exit":
		return true
	case "i", "info":
		s.toggleInfo()
	case "h", "help", "?":
		s.help()
	default:
		if isJSONOutput() {
			writeJSON(s.out, Response{Error: &ErrorInfo{Code: ErrInvalidInput, Message: fmt.Sprintf("unknown command :%s", name), Suggestion: "Type :help"}})
			return false
		}
		fmt.Fprintln(s.out, ui.Warning(fmt.Sprintf("Unknown command :%s (type :help)", name)))
	}
	return false
}

// toggleInfo opens or closes the info overlay. Closing it shows the lookup
// state underneath again.
func (s *shellSession) toggleInfo() {
	s.showInfo = !s.showInfo

	if isJSONOutput() {
		data := map[string]interface{}{"info_visible": s.showInfo}
		if s.showInfo {
			data["markdown"] = infoMarkdown()
		}
		writeJSON(s.out, Response{OK: true, Data: data})
		return
	}

	if !s.showInfo {
		fmt.Fprintln(s.out, ui.Hint("Info closed."))
		writeLookup(s.out, s.ctrl, s.width)
		return
	}

	content := infoMarkdown()
	rendered, err := ui.RenderMarkdown(content, s.width)
	if err != nil {
		rendered = content
	}
	fmt.Fprint(s.out, rendered)
	fmt.Fprintln(s.out, ui.Hint("Type :info again to close."))
}

func (s *shellSession) banner() {
	if isJSONOutput() {
		return
	}
	cfg := getConfig()
	fmt.Fprintln(s.out, ui.Header(cfg.CollectionName()+" Rarity Checker"))
	fmt.Fprintln(s.out, ui.Hint("View collection on Element Market: ")+ui.Link(cfg.Marketplace()))
	fmt.Fprintln(s.out, ui.Hint("Enter an NFT ID to check its rarity. :info for details, :quit to leave."))
}

func (s *shellSession) help() {
	if isJSONOutput() {
		writeJSON(s.out, Response{OK: true, Data: map[string]interface{}{
			"commands": []string{":info", ":help", ":quit"},
		}})
		return
	}
	fmt.Fprintln(s.out, "  :info   show or hide rarity information")
	fmt.Fprintln(s.out, "  :help   list commands")
	fmt.Fprintln(s.out, "  :quit   leave the shell")
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
