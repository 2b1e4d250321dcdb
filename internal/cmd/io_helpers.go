package cmd

import (
	"context"
	"io"
	"os"

	"github.com/salmonumbrella/consoletable/internal/iocontext"
)

func withAppIO(ctx context.Context, app *App) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = iocontext.WithIO(ctx, app.Stdout, app.Stderr)
	if app.Stdin != nil {
		ctx = iocontext.WithStdin(ctx, app.Stdin)
	}
	return ctx
}

func stdoutFromContext(ctx context.Context) io.Writer {
	return iocontext.StdoutOrDefault(ctx, os.Stdout)
}

func stderrFromContext(ctx context.Context) io.Writer {
	return iocontext.StderrOrDefault(ctx, os.Stderr)
}

func stdinFromContext(ctx context.Context) io.Reader {
	return iocontext.StdinOrDefault(ctx, os.Stdin)
}
