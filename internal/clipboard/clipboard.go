// Package clipboard abstracts copy-to-clipboard behind a capability the
// UI only knows as "copy text, tell me if it worked". Detection picks
// the best mechanism once at startup.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// Copier is the clipboard capability.
type Copier interface {
	// Copy places text on the clipboard.
	Copy(text string) error

	// Available reports whether a real clipboard mechanism exists.
	Available() bool
}

// Detect returns the best copier for this system: the native clipboard
// when supported, then a platform copy utility, then a fallback that
// prints the text to the terminal and reports failure.
func Detect() Copier {
	if !clipboard.Unsupported {
		return nativeCopier{}
	}
	for _, c := range [][]string{
		{"pbcopy"},
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	} {
		if _, err := exec.LookPath(c[0]); err == nil {
			return commandCopier{argv: c}
		}
	}
	return printCopier{out: os.Stdout}
}

// nativeCopier uses the platform clipboard API.
type nativeCopier struct{}

func (nativeCopier) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

func (nativeCopier) Available() bool { return true }

// commandCopier shells out to a copy utility, feeding text on stdin.
type commandCopier struct {
	argv []string
}

func (c commandCopier) Copy(text string) error {
	cmd := exec.Command(c.argv[0], c.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.argv[0], err)
	}
	return nil
}

func (c commandCopier) Available() bool { return true }

// printCopier is the last resort: show the text so the user can copy it
// by hand. Copy still reports failure so the UI surfaces it.
type printCopier struct {
	out io.Writer
}

func (p printCopier) Copy(text string) error {
	fmt.Fprintf(p.out, "\nClipboard content:\n%s\n", text)
	return fmt.Errorf("no clipboard mechanism available")
}

func (p printCopier) Available() bool { return false }
