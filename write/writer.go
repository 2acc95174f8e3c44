package write

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Settings controls where solver progress is written. The zero value
// discards everything, so a library caller gets a silent solver unless a
// writer is installed.
type Settings struct {
	// TraceWriters receive the per-iteration trace of a root search.
	// This can be set to nil to avoid all trace output
	TraceWriters []Writer
	// NoticeWriters receive the stage notices emitted by the Solve
	// combinator ("Newton worked", ...)
	NoticeWriters []io.Writer
}

// DefaultSettings returns settings with no writers installed.
func DefaultSettings() *Settings {
	return &Settings{}
}

// StdoutNotices returns settings that print stage notices on standard output
// and no iteration trace, matching the observable behavior of an interactive
// solve.
func StdoutNotices() *Settings {
	return &Settings{NoticeWriters: []io.Writer{os.Stdout}}
}

// Notice writes one stage message to the notice writers in s. A nil s
// discards the message.
func Notice(s *Settings, msg string) {
	if s == nil {
		return
	}
	for _, w := range s.NoticeWriters {
		fmt.Fprintln(w, msg)
	}
}

type Type int

const (
	// Logger is a writer intended to save details of the root search
	// for future postprocessing. The data is saved as a csv row
	// every iteration of the solver
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the search.
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display writes the iteration trace of a root search. Displayer writers are
// rate limited so quick objective functions don't flood the terminal; Logger
// writers get every iteration. Assumption is that headings don't change
type Display struct {
	displayValues []*Value

	headings []string
	values   []string

	maxLengths []int

	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	// set so that headings and values are displayed on the first iteration
	return &Display{
		lastHeadingDisplay: headingInterval + 1,
		lastValueDisplay:   time.Now().Add(-valueInterval),
	}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init initializes the trace for the writers according to their Type.
// A nil settings value installs no writers
func (d *Display) Init(s *Settings) {
	if s == nil {
		return
	}
	d.writers = s.TraceWriters

	if len(d.writers) == 0 {
		return
	}
	d.accumulateValues()

	// get all of the headings
	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			d.existsLogger = true
			fmt.Fprintln(w, strings.Join(d.headings, ","))
		case Displayer:
			d.existsDisplayer = true
			fmt.Fprintf(w, "Beginning root search\n\n")
		}
	}
}

// Iterate is the write action performed by display at every iteration
// of the solver, as set by the Writers and dataAdders which
// were set during initialization
func (d *Display) Iterate() {
	if len(d.writers) == 0 {
		return
	}

	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		// Check if the values need to be displayed
		displayValues = d.shouldDisplayValues()
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
		}

		displayHeadings = d.shouldDisplayHeadings()
		if displayHeadings {
			d.lastHeadingDisplay = 0
		}
	}

	// only accumulate values if needed
	if d.existsLogger || displayValues || displayHeadings {
		d.accumulateValues()
		d.values = d.values[:0]
		for _, v := range d.displayValues {
			d.values = append(d.values, valueToString(v.Value))
		}
	}

	// Find the max length of heading and value
	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			d.maxLengths = append(d.maxLengths, len(v))
			if len(d.headings[i]) > len(v) {
				d.maxLengths[i] = len(d.headings[i])
			}
		}
	}
	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			fmt.Fprintln(w, strings.Join(d.values, ","))
		case Displayer:
			if displayHeadings {
				fmt.Fprintln(w)
				writeAlignedStrings(w, d.headings, d.maxLengths)
			}
			if displayValues {
				writeAlignedStrings(w, d.values, d.maxLengths)
			}
		}
	}
}

func (d *Display) shouldDisplayValues() bool {
	// Display values when enough time has elapsed since the last
	// display. This is to limit printing with really quick objective
	// functions
	return time.Since(d.lastValueDisplay) > valueInterval
}

func (d *Display) shouldDisplayHeadings() bool {
	// Display headings again after a certain number of value printings
	return d.lastHeadingDisplay > headingInterval
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) {
	for i, str := range strs {
		io.WriteString(w, str+strings.Repeat(" ", maxLengths[i]-len(str))+"\t")
	}
	io.WriteString(w, "\n")
}

func valueToString(v interface{}) string {
	switch v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return fmt.Sprintf("%s", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
