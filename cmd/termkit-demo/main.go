// Demo application for the termkit runtime: a dashboard with two
// focusable panes, an animated spinner, tab focus, mouse focus, and
// the audio bell.
//
// Keys: Tab/Shift-Tab cycle focus, Enter rings the bell on the focused
// pane, q quits.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/termkit/audio"
	"github.com/lixenwraith/termkit/paint"
	"github.com/lixenwraith/termkit/system"
	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/widget"
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

type spinner struct {
	widget.Base
	board *dashboard
	frame int
}

func (s *spinner) HandleTimer() bool {
	s.frame = (s.frame + 1) % len(spinnerFrames)
	s.board.paint()
	return true
}

type pane struct {
	widget.Base
	board *dashboard
	label string
	x, y  int
	w, h  int
}

func newPane(board *dashboard, label string, x, y, w, h int) *pane {
	p := &pane{board: board, label: label, x: x, y: y, w: w, h: h}
	p.SetAcceptsFocus(true)
	return p
}

func (p *pane) contains(x, y int) bool {
	return x >= p.x && x < p.x+p.w && y >= p.y && y < p.y+p.h
}

func (p *pane) HandleKey(k widget.KeyEvent) bool {
	if k.Key == terminal.KeyEnter {
		p.board.sys.Beep()
		return true
	}
	return false
}

func (p *pane) HandleFocusIn() bool  { p.board.paint(); return true }
func (p *pane) HandleFocusOut() bool { p.board.paint(); return true }

type dashboard struct {
	widget.Base
	sys   *system.System
	buf   *paint.Buffer
	panes []*pane
	spin  *spinner
}

func newDashboard(sys *system.System) *dashboard {
	d := &dashboard{
		sys: sys,
		buf: paint.NewBuffer(80, 24),
	}
	d.spin = &spinner{board: d}
	d.AddChild(d.spin)

	d.panes = []*pane{
		newPane(d, "alpha", 2, 2, 24, 5),
		newPane(d, "beta", 2, 8, 24, 5),
	}
	for _, p := range d.panes {
		d.AddChild(p)
	}
	return d
}

func (d *dashboard) HandleResize(w, h int) bool {
	d.buf.Resize(w, h)
	d.paint()
	return true
}

func (d *dashboard) HandlePaint() bool {
	d.paint()
	return true
}

func (d *dashboard) HandleMouse(m widget.MouseEvent) bool {
	if m.Action != terminal.MouseActionPress || m.Button != terminal.MouseBtnLeft {
		return false
	}
	for _, p := range d.panes {
		if p.contains(m.X, m.Y) {
			d.sys.SetFocus(p)
			return true
		}
	}
	return false
}

func (d *dashboard) paint() {
	pal := d.sys.Palette()
	bg := pal.Color(paint.SlotBlack)
	fg := pal.Color(paint.SlotWhite)
	accent := pal.Color(paint.SlotBrightYellow)

	d.buf.Fill(' ', fg, bg)
	d.buf.SetString(2, 0, "termkit demo - Tab cycles, Enter beeps, q quits", fg, bg, paint.AttrBold)

	for _, p := range d.panes {
		color := fg
		attrs := paint.AttrNone
		if d.sys.Focus() == p {
			color = accent
			attrs = paint.AttrReverse
		}
		for y := p.y; y < p.y+p.h; y++ {
			for x := p.x; x < p.x+p.w; x++ {
				d.buf.SetCell(x, y, paint.Cell{Rune: ' ', Fg: color, Bg: bg, Attrs: attrs})
			}
		}
		d.buf.SetString(p.x+1, p.y+1, p.label, color, bg, attrs|paint.AttrBold)
	}

	d.buf.SetString(2, d.buf.Height()-2,
		fmt.Sprintf("spinner %c", spinnerFrames[d.spin.frame]), accent, bg, paint.AttrNone)

	d.sys.Terminal().Flush(d.buf)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			system.HandleCrash(r)
		}
	}()

	bell := audio.NewBell()
	if err := bell.Initialize(); err != nil {
		// Non-fatal, the terminal bell covers for it
		log.Printf("audio init failed: %v", err)
	}
	defer bell.Cleanup()

	sys := system.New(
		system.WithMouseMode(terminal.MouseBasic),
		system.WithSignalMode(terminal.SignalsOff),
		system.WithBell(bell),
	)
	sys.EnableTabFocus()

	// Global quit key, intercepted before any widget
	sys.InstallEventFilter(func(e system.Event) bool {
		if e.Kind == system.EventKeyPress && e.Key.Rune == 'q' {
			sys.Exit(0)
			return true
		}
		return false
	})

	board := newDashboard(sys)
	if err := sys.SetHead(board); err != nil {
		log.Fatalf("set head: %v", err)
	}
	sys.EnableAnimation(board.spin, 120*time.Millisecond)

	code, err := sys.Run()
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	os.Exit(code)
}
