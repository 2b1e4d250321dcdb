package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	ctxerrors "github.com/salmonumbrella/consoletable/internal/errors"
	"github.com/salmonumbrella/consoletable/internal/output"
)

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return ctxerrors.NewUserError(
			fmt.Sprintf("invalid --error-format %q", format),
			"Use one of: auto, text, json, yaml",
		)
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	format := strings.ToLower(strings.TrimSpace(ErrorFormatFromContext(ctx)))
	if format == "" || format == "auto" {
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON, output.FormatNDJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(stderrFromContext(ctx), err)
	if suggestion := ctxerrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(stderrFromContext(ctx), "Hint: %s\n", suggestion)
	}
}

func buildErrorEnvelope(err error) map[string]interface{} {
	payload := map[string]interface{}{
		"error": map[string]interface{}{
			"message": err.Error(),
		},
	}

	errMap := payload["error"].(map[string]interface{})
	category := "system"
	if ctxerrors.IsUsageError(err) || ctxerrors.IsSourceError(err) {
		category = "user"
	}
	errMap["category"] = category
	errMap["exit_code"] = ExitCode(err)

	if suggestion := ctxerrors.UserSuggestion(err); suggestion != "" {
		errMap["suggestion"] = suggestion
	}

	var validationErr *ctxerrors.ValidationError
	if errors.As(err, &validationErr) {
		errMap["type"] = "validation"
		errMap["field"] = validationErr.Field
	}

	var shapeErr *ctxerrors.ShapeError
	if errors.As(err, &shapeErr) {
		errMap["type"] = "shape"
		errMap["op"] = shapeErr.Op
		if shapeErr.Message == "" {
			errMap["want"] = shapeErr.Want
			errMap["got"] = shapeErr.Got
		}
	}

	var indexErr *ctxerrors.IndexError
	if errors.As(err, &indexErr) {
		errMap["type"] = "index"
		errMap["op"] = indexErr.Op
		errMap["index"] = indexErr.Index
		errMap["len"] = indexErr.Len
	}

	var selectorErr *ctxerrors.InvalidSelectorError
	if errors.As(err, &selectorErr) {
		errMap["type"] = "style"
		errMap["value"] = selectorErr.Value
	}

	var sourceErr *ctxerrors.SourceError
	if errors.As(err, &sourceErr) {
		errMap["type"] = "source"
		errMap["source"] = sourceErr.Source
		if sourceErr.Line > 0 {
			errMap["line"] = sourceErr.Line
		}
	}

	return payload
}
