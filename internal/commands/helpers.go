package commands

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/simonhull/plume/internal/render"
)

// terminalWidth returns the width of w when it is a terminal, defaulting to
// render.DefaultWidth otherwise
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return render.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return render.DefaultWidth
	}
	return width
}
