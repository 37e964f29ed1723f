// Package display renders machine snapshots as terminal tables.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ezrec/asmvm/machine"
)

const (
	INSTRUCTION_WIDTH = 30 // Maximum width of the instruction column.
	REGISTER_WIDTH    = 20 // Maximum width of a register value.
	VARIABLE_WIDTH    = 20 // Maximum width of a variable value.
	STACK_WIDTH       = 10 // Maximum width of a stack entry.
)

// clearScreen homes the cursor and erases the terminal.
const clearScreen = "\033[H\033[2J"

var highlight = text.Colors{text.FgYellow, text.Bold}

// Display writes a rendering of each snapshot to Output.
type Display struct {
	Output io.Writer
	Clear  bool // Clear the terminal before each rendering.
	Color  bool // Highlight the current instruction and changed registers.
}

// Show renders a snapshot.
func (d *Display) Show(snap machine.Snapshot) (err error) {
	var out strings.Builder
	if d.Clear {
		out.WriteString(clearScreen)
	}
	out.WriteString(d.Render(snap))
	out.WriteString("\n")

	_, err = io.WriteString(d.Output, out.String())
	return
}

// Render lays out the instruction, register, variable and stack tables side
// by side.
func (d *Display) Render(snap machine.Snapshot) string {
	layout := table.NewWriter()
	style := table.StyleDefault
	style.Options = table.OptionsNoBordersAndSeparators
	layout.SetStyle(style)
	layout.AppendRow(table.Row{
		d.instructions(snap),
		d.registers(snap),
		d.variables(snap),
		d.stack(snap),
	})

	return layout.Render()
}

// panel creates a titled table whose columns are capped at width. The table
// is never narrower than its title, so the title stays on one line.
func panel(title string, width int) table.Writer {
	style := table.StyleRounded
	box := style.Box
	style.Size.WidthMin = text.StringWidthWithoutEscSequences(box.Left + box.PaddingLeft + title + box.PaddingRight + box.Right)

	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(style)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMax: width, WidthMaxEnforcer: text.Trim},
		{Number: 2, WidthMax: width, WidthMaxEnforcer: text.Trim},
	})
	return t
}

func (d *Display) color(str string) string {
	if !d.Color {
		return str
	}
	return highlight.Sprint(str)
}

func (d *Display) instructions(snap machine.Snapshot) string {
	t := panel("Instructions", INSTRUCTION_WIDTH)
	for n, line := range snap.Instructions {
		if !strings.HasSuffix(strings.Fields(line)[0], ":") {
			line = "    " + line
		}
		if n == snap.Ip {
			t.AppendRow(table.Row{d.color("→ " + line)})
		} else {
			t.AppendRow(table.Row{"  " + line})
		}
	}
	if len(snap.Instructions) == 0 {
		t.AppendRow(table.Row{"No instructions"})
	}
	return t.Render()
}

func (d *Display) registers(snap machine.Snapshot) string {
	t := panel("Registers", REGISTER_WIDTH)
	for name, value := range snap.Registers.All() {
		reg, _ := machine.LookupRegister(name)
		strval := fmt.Sprintf("%d", value)
		if snap.Changed(reg) {
			strval = d.color(strval)
		}
		t.AppendRow(table.Row{strings.ToUpper(name) + ":", strval})
	}
	return t.Render()
}

func (d *Display) variables(snap machine.Snapshot) string {
	t := panel("Variables", VARIABLE_WIDTH)
	for _, v := range snap.Variables {
		t.AppendRow(table.Row{v.Name + ":", v.Value.String()})
	}
	if len(snap.Variables) == 0 {
		t.AppendRow(table.Row{"No variables"})
	}
	return t.Render()
}

func (d *Display) stack(snap machine.Snapshot) string {
	t := panel("Stack", STACK_WIDTH)
	for _, value := range snap.Stack {
		t.AppendRow(table.Row{fmt.Sprintf("%d", value)})
	}
	if len(snap.Stack) == 0 {
		t.AppendRow(table.Row{"Empty"})
	}
	return t.Render()
}
