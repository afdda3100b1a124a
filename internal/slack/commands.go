package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd   CommandType = "add"
	CmdDrop  CommandType = "drop"
	CmdShow  CommandType = "show"
	CmdCM    CommandType = "cm"
	CmdPoll  CommandType = "poll"
	CmdHello CommandType = "hello"
	CmdHelp  CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "drop", "remove", "rm":
		cmd.Type = CmdDrop
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "show", "list", "ls":
		cmd.Type = CmdShow
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "cm":
		cmd.Type = CmdCM
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "poll":
		cmd.Type = CmdPoll
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "hello":
		cmd.Type = CmdHello
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Availability:*
• ` + "`/avail add friday`" + ` - Mark yourself available on a date
• ` + "`/avail add friday to monday`" + ` - Mark a whole date range
• ` + "`/avail drop friday`" + ` - Mark yourself unavailable again
• ` + "`/avail drop all`" + ` - Clear all your availability
• ` + "`/avail show`" + ` - See who is available on upcoming dates

*Critical mass:*
• ` + "`/avail cm 5`" + ` - Alert the channel once 5 people share a date

*Polls:*
• ` + "`/avail poll`" + ` - Post date buttons for the next 20 days
• ` + "`/avail poll 10`" + ` - Same, for the next 10 days

Dates understand weekday names ("friday", "next monday"), "today",
"tomorrow", "june 5" and "2026-09-04".`
}
