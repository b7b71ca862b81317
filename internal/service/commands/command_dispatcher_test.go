package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

type stubReporting struct {
	supplier string
}

func (s *stubReporting) RestockAlertText(context.Context) (string, bool, error) {
	return "restock", true, nil
}

func (s *stubReporting) ShoppingText(_ context.Context, supplier string) (string, error) {
	s.supplier = supplier
	if supplier != "Makro" && supplier != "Big C" {
		return "", models.ErrSupplierNotFound
	}
	return "list for " + supplier, nil
}

func (s *stubReporting) SuppliersText(context.Context) (string, error) { return "suppliers", nil }

func (s *stubReporting) WeeklyUsageText(context.Context) (string, error) { return "usage", nil }

func TestHandleCommand(t *testing.T) {
	ctx := context.Background()
	reporting := &stubReporting{}
	svc := NewService(reporting, nil)

	cases := map[string]string{
		"/restock":        "restock",
		"/suppliers":      "suppliers",
		"/usage":          "usage",
		"/help":           HelpText,
		"/shopping Makro": "list for Makro",
		"/shopping Big C": "list for Big C",
		"/shopping Tesco": "Nothing to buy from Tesco.",
	}
	for text, want := range cases {
		got, err := svc.HandleCommand(ctx, models.ParseCommand(text), "66800000000")
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
}

func TestHandleCommandErrors(t *testing.T) {
	svc := NewService(&stubReporting{}, nil)

	_, err := svc.HandleCommand(context.Background(), models.ParseCommand("/shopping"), "x")
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = svc.HandleCommand(context.Background(), models.ParseCommand("hello"), "x")
	assert.ErrorIs(t, err, ErrUnsupportedCommand)
}
