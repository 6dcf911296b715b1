package grid

import (
	"strings"
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
)

func TestFrameRune(t *testing.T) {
	// When: rendering the frame of a 2 rows 3 columns grid
	var sb strings.Builder
	for y := 0; y <= 4; y++ {
		for x := 0; x <= 6; x++ {
			sb.WriteRune(frameRune(x, y, 3, 2))
		}
		sb.WriteByte('\n')
	}

	// Then: it matches the documented sample
	assert.Equal(t, ""+
		"┌─┬─┬─┐\n"+
		"│ │ │ │\n"+
		"├─┼─┼─┤\n"+
		"│ │ │ │\n"+
		"└─┴─┴─┘\n", sb.String())
}

func TestGrid_CellPosition(t *testing.T) {
	g := &Grid{Height: 6, Width: 7, HeaderHeight: 3}

	x, y := g.cellPosition(0, 0)
	assert.Equal(t, [2]int{1, 4}, [2]int{x, y})

	x, y = g.cellPosition(6, 5)
	assert.Equal(t, [2]int{13, 14}, [2]int{x, y})
}

func TestGrid_Dispatch(t *testing.T) {
	// Given: a grid with a few handlers
	g := &Grid{}
	var calls []string
	g.RegisterKeyHandler(termbox.KeyEnter, func(*Grid) { calls = append(calls, "enter") })
	quit := g.RegisterKeyHandler('q', func(*Grid) { calls = append(calls, "q") })
	g.RegisterKeyHandler(termbox.KeySpace, func(*Grid) { calls = append(calls, "space") })

	// When: dispatching special and printable keys
	g.dispatch(termbox.KeyEnter, 0)
	g.dispatch(0, 'q')
	g.dispatch(termbox.KeySpace, ' ')
	g.dispatch(0, 'x')

	// Then: the matching handlers are called
	assert.Equal(t, []string{"enter", "q", "space"}, calls)

	// When: unregistering a handler
	g.UnregisterKeyHandler(quit)
	g.dispatch(0, 'q')

	// Then: it is no longer called
	assert.Equal(t, []string{"enter", "q", "space"}, calls)
}

func TestGrid_DispatchSwapHandler(t *testing.T) {
	// Given: an Enter handler replacing itself with another one
	g := &Grid{}
	var calls []string
	var first *KeyHandler
	first = g.RegisterKeyHandler(termbox.KeyEnter, func(g *Grid) {
		calls = append(calls, "first")
		g.UnregisterKeyHandler(first)
		g.RegisterKeyHandler(termbox.KeyEnter, func(*Grid) { calls = append(calls, "second") })
	})

	// When: pressing Enter twice
	g.dispatch(termbox.KeyEnter, 0)

	// Then: the new handler waits for the next event
	assert.Equal(t, []string{"first"}, calls)

	g.dispatch(termbox.KeyEnter, 0)
	assert.Equal(t, []string{"first", "second"}, calls)
}
