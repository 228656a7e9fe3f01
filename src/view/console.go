package view

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"

	"conwaylife/src/universe"
)

var stateDescr = map[universe.RunState]string{
	universe.StateRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
	universe.StateFinished: aurora.Colorize("finished", aurora.GreenFg).String(),
	universe.StateExtinct:  aurora.Colorize("extinct", aurora.RedFg).String(),
}

//StateText returns the colored human description of a run state
func StateText(s universe.RunState) string {
	if d, ok := stateDescr[s]; ok {
		return d
	}
	return s.String()
}

//Prop renders a "  name: value" line with the name highlighted
func Prop(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf("  "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

//Console prints simulation progress and results. It implements
//universe.Observer and is driven synchronously by Run.
type Console struct {
	out       io.Writer
	every     int //progress line cadence in cycles
	startTime time.Time
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out, every: 10}
}

//Header prints the scenario banner and the running configuration.
//It also arms the total time measurement, so it should be called right
//before the run starts.
func (c *Console) Header(name string, descr string, u *universe.Universe) {
	fmt.Fprintf(c.out, "%s: %s\n", aurora.Colorize(name, aurora.CyanFg).String(), descr)
	fmt.Fprintln(c.out, u)
	fmt.Fprintln(c.out, "Running configuration:")
	fmt.Fprintln(c.out, Prop("Dimension", "%v x %v", u.Width(), u.Height()))
	fmt.Fprintln(c.out, Prop("Cycles", "%v", u.Cycles()))
	fmt.Fprintln(c.out, Prop("Boundary", "%v", u.Boundary()))
	c.startTime = time.Now()
	fmt.Fprintln(c.out, "\nSimulation started...")
}

//Observe prints a progress line every few cycles and the summary when the
//run terminates
func (c *Console) Observe(st universe.Status) {
	if st.State == universe.StateRunning {
		if c.every > 0 && st.Cycle%c.every == 0 {
			fmt.Fprintf(c.out, "  Iterations done: %v\n", st.Cycle)
		}
		return
	}
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Fprintln(c.out, "\nFinished:")
	fmt.Fprintln(c.out, Prop("State", "%v", StateText(st.State)))
	fmt.Fprintln(c.out, Prop("Last iteration", "%v", st.Cycle))
	fmt.Fprintln(c.out, Prop("Live cells", "%v", st.LiveCells))
	fmt.Fprintln(c.out, Prop("Total time", "%v", totalTime))
}
