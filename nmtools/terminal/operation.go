package terminal

import (
	"fmt"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation
type Operation struct {
	channel chan bool
	done    chan struct{}
}

// NewOperation starts a long running operation. The spinner only runs when
// colors are enabled, i.e. when writing to a terminal.
func NewOperation(format string, a ...interface{}) *Operation {
	o := &Operation{
		channel: make(chan bool),
		done:    make(chan struct{}),
	}
	spinFrames := []rune(spinner)
	spinFramesSize := len(spinFrames)
	animate := Colors

	go func() {
		defer close(o.done)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

	L:
		for {
			select {
			case <-o.channel:
				break L
			case <-ticker.C:
				if !animate {
					continue
				}
				fmt.Fprintf(Output, "\r  %s%s%s %s ", color(yellow), fmt.Sprintf(format, a...), color(reset), string(spinFrames[pos%spinFramesSize]))
				pos++
			}
		}
	}()

	return o
}

// Success informs that the operation is over
func (o *Operation) Success(format string, a ...interface{}) {
	o.finished("\u2713", green, format, a...)
}

// Error informs that the operation failed
func (o *Operation) Error(err error, format string, a ...interface{}) {
	var message = format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	o.finished("\u2717", red, message, a...)
}

func (o *Operation) finished(symbol string, c string, format string, a ...interface{}) {
	o.channel <- true
	<-o.done

	if Colors {
		fmt.Fprintf(Output, "\033[2K\r")
	}
	fmt.Fprintf(Output, "%s %s%s%s \n", symbol, color(c), fmt.Sprintf(format, a...), color(reset))
}
