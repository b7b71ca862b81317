package models

import "strings"

// CommandType enumerates the chat commands staff can send.
type CommandType string

const (
	CommandRestock   CommandType = "restock"
	CommandShopping  CommandType = "shopping"
	CommandSuppliers CommandType = "suppliers"
	CommandUsage     CommandType = "usage"
	CommandHelp      CommandType = "help"
	CommandUnknown   CommandType = "unknown"
)

// Command represents a parsed staff instruction extracted from WhatsApp text.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command from a free-form text message. The command
// word is case-insensitive and the leading slash optional; arguments keep
// their original case since supplier names are matched exactly.
func ParseCommand(message string) Command {
	tokens := strings.Fields(strings.TrimSpace(message))
	cmd := Command{Type: CommandUnknown, Raw: message}
	if len(tokens) == 0 {
		return cmd
	}

	head := CommandType(strings.ToLower(strings.TrimPrefix(tokens[0], "/")))
	switch head {
	case CommandRestock, CommandShopping, CommandSuppliers, CommandUsage, CommandHelp:
		cmd.Type = head
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}
	return cmd
}
