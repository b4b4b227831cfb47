package greeting

import (
	"fmt"
	"io"
)

// Message is the fixed greeting line.
const Message = "Hello, World!"

// Print writes the greeting followed by a newline.
func Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, Message)
	return err
}
