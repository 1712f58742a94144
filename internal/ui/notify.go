package ui

import (
	"fmt"
	"io"
)

// Fail writes a red error line to w.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}

// Hint writes a muted follow-up line to w.
func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Muted.Render(msg))
}
