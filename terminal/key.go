package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Input.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyCtrlBackslash
)

// ModMask represents active keyboard modifiers (bitmask)
type ModMask uint8

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << 0
	ModCtrl  ModMask = 1 << 1
	ModAlt   ModMask = 1 << 2
	ModMeta  ModMask = 1 << 3
)

// tcellKeyTable maps special tcell keys to terminal keys
var tcellKeyTable = map[tcell.Key]Key{
	tcell.KeyEsc:        KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// translateKey converts a tcell key event into (Key, rune, ModMask).
// Ctrl+letter arrives from tcell as a dedicated key code with the rune
// carrying the raw control byte; both are preserved.
func translateKey(ev *tcell.EventKey) (Key, rune, ModMask) {
	mod := translateMod(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return KeySpace, r, mod
		}
		return KeyRune, r, mod
	}
	if mapped, ok := tcellKeyTable[k]; ok {
		return mapped, ev.Rune(), mod
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyCtrlA + Key(k-tcell.KeyCtrlA), ev.Rune(), mod | ModCtrl
	}
	if k == tcell.KeyCtrlBackslash {
		return KeyCtrlBackslash, ev.Rune(), mod | ModCtrl
	}
	return KeyNone, ev.Rune(), mod
}

// translateMod converts tcell modifier bits
func translateMod(m tcell.ModMask) ModMask {
	var out ModMask
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= ModMeta
	}
	return out
}
