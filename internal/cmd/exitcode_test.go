package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", context.Canceled, ExitCanceled},
		{"wrapped canceled", fmt.Errorf("query: %w", context.Canceled), ExitCanceled},
		{"user", clierrors.NewUserError("bad", "hint"), ExitUser},
		{"validation", &clierrors.ValidationError{Field: "x", Message: "bad"}, ExitUser},
		{"shape", clierrors.NewShapeError("add row", 2, 3), ExitUser},
		{"index", &clierrors.IndexError{Op: "remove column", Index: 4, Len: 2}, ExitUser},
		{"selector", &clierrors.InvalidSelectorError{Value: "fancy"}, ExitUser},
		{"source", clierrors.WrapSource("in.csv", 3, errors.New("bad row")), ExitUser},
		{"system", errors.New("disk on fire"), ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
