package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asmvm/machine"
)

func snapshot(t *testing.T, program []string, ticks int) machine.Snapshot {
	ld := &machine.Loader{}
	prog, err := ld.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	m := machine.NewMachine(prog)
	for range ticks {
		if err := m.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	return m.Snapshot()
}

func TestDisplay_Render(t *testing.T) {
	assert := assert.New(t)

	snap := snapshot(t, []string{
		"var x = 5",
		"loop:",
		"push 42",
		"mov eax, x",
	}, 3)

	d := &Display{}
	out := d.Render(snap)

	assert.Contains(out, "Instructions")
	assert.Contains(out, "Registers")
	assert.Contains(out, "Variables")
	assert.Contains(out, "Stack")
	assert.Contains(out, "→     mov eax, x")
	assert.Contains(out, "  loop:")
	assert.Contains(out, "EAX:")
	assert.Contains(out, "CMP:")
	assert.Contains(out, "x:")
	assert.Contains(out, "42")
	assert.NotContains(out, "\033[")
}

func TestDisplay_Empty(t *testing.T) {
	assert := assert.New(t)

	d := &Display{}
	out := d.Render(machine.Snapshot{})

	assert.Contains(out, "No instructions")
	assert.Contains(out, "No variables")
	assert.Contains(out, "Empty")
}

func TestDisplay_Titles(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		snap machine.Snapshot
	}){
		{"empty", machine.Snapshot{}},
		{"narrow", machine.Snapshot{
			Instructions: []string{"a:"},
			Variables:    []machine.Variable{{Name: "x", Value: machine.Int(1)}},
			Stack:        []int64{7},
		}},
	}

	d := &Display{}
	for _, entry := range table {
		out := d.Render(entry.snap)
		for _, title := range []string{"Instructions", "Registers", "Variables", "Stack"} {
			assert.Contains(out, "│ "+title+" ", entry.name)
		}
	}
}

func TestDisplay_Color(t *testing.T) {
	assert := assert.New(t)

	snap := snapshot(t, []string{"mov ebx, 12345", "inc eax"}, 1)

	d := &Display{Color: true}
	out := d.Render(snap)

	assert.Contains(out, highlight.Sprint("12345"))
	assert.Contains(out, highlight.Sprint("→     inc eax"))
}

func TestDisplay_Show(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	d := &Display{Output: buf, Clear: true}

	err := d.Show(machine.Snapshot{})
	assert.NoError(err)
	assert.True(strings.HasPrefix(buf.String(), clearScreen))
	assert.True(strings.HasSuffix(buf.String(), "\n"))
}
