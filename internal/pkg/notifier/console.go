package notifier

import (
	"fmt"

	"github.com/fatih/color"
)

// Console prints notices to stdout with a colored severity tag.
// Used in development where no websocket client is attached.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Notify(notice Notice) {
	var tag string
	switch notice.Severity {
	case SeveritySuccess:
		tag = color.New(color.FgGreen, color.Bold).Sprint("[OK]")
	case SeverityError:
		tag = color.New(color.FgRed, color.Bold).Sprint("[ERR]")
	default:
		tag = color.New(color.FgCyan, color.Bold).Sprint("[INFO]")
	}

	if notice.Description != "" {
		fmt.Printf("%s %s: %s\n", tag, notice.Title, notice.Description)
		return
	}
	fmt.Printf("%s %s\n", tag, notice.Title)
}
