package model

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	gridPosAlive = "██"
	gridPosDead  = "░░"

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			if g.CellAt(NewCoord(x, y)).IsAlive() {
				fmt.Print(gridPosAlive)
			} else {
				fmt.Print(gridPosDead)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
