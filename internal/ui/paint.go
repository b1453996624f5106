package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// topMargin is the number of blank rows above the frame.
const topMargin = 2

// styleFor maps a display attribute to a terminal style.
func styleFor(a Attr) tcell.Style {
	st := tcell.StyleDefault
	switch a {
	case AttrBold:
		return st.Bold(true)
	case AttrDim:
		return st.Dim(true)
	case AttrTitle:
		return st.Foreground(tcell.ColorYellow).Bold(true)
	case AttrError:
		return st.Foreground(tcell.ColorRed)
	case AttrNotice:
		return st.Foreground(tcell.ColorAqua)
	case AttrAnswer:
		return st.Foreground(tcell.ColorGreen).Bold(true)
	case AttrInput:
		return st.Bold(true)
	case AttrCorrect:
		return st.Foreground(tcell.ColorGreen).Bold(true)
	case AttrIncorrect:
		return st.Foreground(tcell.ColorYellow).Bold(true)
	case AttrNotInWord:
		return st.Foreground(tcell.ColorDarkGray)
	default:
		return st
	}
}

// paint draws f centred horizontally and shows it.
func paint(s tcell.Screen, f Frame) {
	s.Clear()
	w, h := s.Size()
	for row, line := range f.Lines {
		y := topMargin + row
		if y >= h {
			break
		}
		x := (w - runewidth.StringWidth(line.Text())) / 2
		if x < 0 {
			x = 0
		}
		for _, seg := range line {
			st := styleFor(seg.Attr)
			for _, r := range seg.Text {
				if x >= w {
					break
				}
				s.SetContent(x, y, r, nil, st)
				x += max(runewidth.RuneWidth(r), 1)
			}
		}
	}
	s.Show()
}
