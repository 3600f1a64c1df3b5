package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosAlive    = "██"
	gridPosDecaying = "▒▒"
	gridPosEmpty    = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer prints one i-slice of the cube to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the j-k plane at i = layer. Layers outside the cube are clamped.
func (r *TerminalRenderer) Display(w *World, layer int) {
	dims := int(w.Rules().Dims())
	layer = min(max(layer, 0), dims-1)

	var b strings.Builder
	for j := range dims {
		for k := range dims {
			idx := Index{I: uint16(layer), J: uint16(j), K: uint16(k)}
			switch st, _ := w.At(idx).Status(); st {
			case Alive:
				b.WriteString(gridPosAlive)
			case Decaying:
				b.WriteString(gridPosDecaying)
			default:
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.out(), b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
