package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/life"
	"term-life/internal/pattern"
	"term-life/internal/session"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	styleCell    = styleDefault.Foreground(tcell.ColorGreen)
	styleStatus  = styleDefault.Foreground(tcell.ColorAqua)
	styleTitle   = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleNotice  = styleDefault.Foreground(tcell.ColorYellow)
	styleInput   = styleDefault.Bold(true)
	stylePaused  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func (g *Screen) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		g.sc.SetContent(x+i, y, r, nil, style)
	}
}

// drawLine clears the row before writing so shrinking text leaves no tail.
func (g *Screen) drawLine(y int, text string, style tcell.Style) {
	w, _ := g.sc.Size()
	for x := 0; x < w; x++ {
		g.sc.SetContent(x, y, ' ', nil, styleDefault)
	}
	g.drawText(0, y, text, style)
}

// Render draws the bordered board, two columns per cell, with the status
// line underneath. The frame is a copy, so the simulation may step while
// the previous frame is still on screen.
func (g *Screen) Render(f life.Frame, st session.Status) error {
	g.sc.Clear()

	cell := styleCell
	if !st.Color {
		cell = styleDefault
	}

	// Border: one character row top and bottom, one column each side of
	// the doubled-up cell columns.
	g.sc.SetContent(0, 0, '+', nil, styleBorder)
	g.sc.SetContent(f.W*2+1, 0, '+', nil, styleBorder)
	g.sc.SetContent(0, f.H+1, '+', nil, styleBorder)
	g.sc.SetContent(f.W*2+1, f.H+1, '+', nil, styleBorder)
	for x := 1; x <= f.W*2; x++ {
		g.sc.SetContent(x, 0, '-', nil, styleBorder)
		g.sc.SetContent(x, f.H+1, '-', nil, styleBorder)
	}
	for y := 1; y <= f.H; y++ {
		g.sc.SetContent(0, y, '|', nil, styleBorder)
		g.sc.SetContent(f.W*2+1, y, '|', nil, styleBorder)
	}

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			r := ' '
			style := styleDefault
			if f.Alive(x, y) {
				r = '#'
				style = cell
			}
			g.sc.SetContent(1+x*2, 1+y, r, nil, style)
			g.sc.SetContent(2+x*2, 1+y, r, nil, style)
		}
	}

	status := fmt.Sprintf("Gen %d | Alive %d | Speed %d/%d | %s",
		st.Generation, st.Alive, st.SpeedLevel, st.SpeedMax, st.Pattern)
	g.drawText(0, f.H+2, status, styleStatus)
	if st.Paused {
		g.drawText(len(status)+1, f.H+2, " PAUSED ", stylePaused)
	}
	g.drawText(0, f.H+3, "q menu  p pause  u faster  d slower", styleBorder)

	g.sc.Show()
	return nil
}

// page clears the screen and draws a titled block of lines, leaving g.row
// pointing at the first free line for a prompt.
func (g *Screen) page(title string, lines []string) {
	g.sc.Clear()
	g.drawLine(0, title, styleTitle)
	y := 2
	for _, l := range lines {
		g.drawLine(y, l, styleDefault)
		y++
	}
	if g.notice != "" {
		y++
		g.drawLine(y, g.notice, styleNotice)
		g.notice = ""
		y++
	}
	g.row = y + 1
	g.sc.Show()
}

// ShowMenu draws the main menu.
func (g *Screen) ShowMenu(st session.Status) error {
	color := "off"
	if st.Color {
		color = "on"
	}
	g.page("TERM LIFE - Conway's Game of Life", []string{
		"1) Start simulation",
		fmt.Sprintf("2) Choose pattern    (current: %s)", st.Pattern),
		fmt.Sprintf("3) Board size        (current: %dx%d)", st.Width, st.Height),
		fmt.Sprintf("4) Toggle color      (current: %s)", color),
		"5) Help",
		"6) Exit",
	})
	return nil
}

// ShowPatternMenu draws the pattern picker.
func (g *Screen) ShowPatternMenu(active pattern.Kind) error {
	lines := make([]string, 0, len(pattern.Kinds()))
	for i, k := range pattern.Kinds() {
		marker := " "
		if k == active {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%d) %s %s", i+1, k, marker))
	}
	g.page("Choose a pattern", lines)
	return nil
}

// ShowHelp draws the key reference page.
func (g *Screen) ShowHelp() error {
	g.page("Help", []string{
		"While the simulation runs:",
		"  q  return to the menu",
		"  p  pause / resume",
		"  u  speed up",
		"  d  slow down",
		"",
		"Ctrl+C exits immediately from anywhere.",
		"",
		"Press any key to return to the menu.",
	})
	return nil
}
