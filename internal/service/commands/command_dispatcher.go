// Package commands answers the chat commands staff send over WhatsApp.
package commands

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// HelpText lists every supported command.
const HelpText = "Commands:\n" +
	"/restock - items below minimum stock\n" +
	"/shopping <supplier> - shopping list for one supplier\n" +
	"/suppliers - suppliers with something to buy\n" +
	"/usage - usage between the last two saved sessions\n" +
	"/help - this message"

// ReportingAdapter defines the reports required by the dispatcher.
type ReportingAdapter interface {
	RestockAlertText(ctx context.Context) (string, bool, error)
	ShoppingText(ctx context.Context, supplier string) (string, error)
	SuppliersText(ctx context.Context) (string, error)
	WeeklyUsageText(ctx context.Context) (string, error)
}

// Dispatcher executes parsed commands and returns the reply text.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	reporting ReportingAdapter
	logger    *zap.Logger
}

// NewService constructs a command dispatcher.
func NewService(reporting ReportingAdapter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{reporting: reporting, logger: logger}
}

// HandleCommand runs the report behind cmd.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Strings("args", cmd.Args))

	switch cmd.Type {
	case models.CommandRestock:
		text, _, err := s.reporting.RestockAlertText(ctx)
		return text, err
	case models.CommandShopping:
		if len(cmd.Args) == 0 {
			return "", ErrInvalidArguments
		}
		supplier := strings.Join(cmd.Args, " ")
		text, err := s.reporting.ShoppingText(ctx, supplier)
		if errors.Is(err, models.ErrSupplierNotFound) {
			return "Nothing to buy from " + supplier + ".", nil
		}
		return text, err
	case models.CommandSuppliers:
		return s.reporting.SuppliersText(ctx)
	case models.CommandUsage:
		return s.reporting.WeeklyUsageText(ctx)
	case models.CommandHelp:
		return HelpText, nil
	default:
		return "", ErrUnsupportedCommand
	}
}
