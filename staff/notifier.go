package staff

import (
	"fmt"
	"io"
	"os"
)

// Notifier receives the human-readable confirmations emitted by pay and
// vacation operations.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

// WriterNotifier writes each notification on its own line.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(msg string) {
	fmt.Fprintln(n.W, msg)
}

// Stdout prints notifications to standard output. It is the default
// notifier for new employees.
var Stdout Notifier = WriterNotifier{W: os.Stdout}

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(string) {})

// Recorder keeps notifications in memory, oldest first.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Notify(msg string) {
	r.Messages = append(r.Messages, msg)
}

// Last returns the most recent notification, or "" if none was sent.
func (r *Recorder) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
