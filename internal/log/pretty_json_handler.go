package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
)

// PrettyJSONHandlerOptions configures a PrettyJSONHandler. PrettyPrint
// indents every record for local development; production keeps the
// compact single-line output.
type PrettyJSONHandlerOptions struct {
	slog.HandlerOptions
	PrettyPrint bool
}

// NewPrettyJSONHandler returns a JSON slog handler that optionally
// indents each record.
func NewPrettyJSONHandler(w io.Writer, opts *PrettyJSONHandlerOptions) slog.Handler {
	if opts == nil {
		opts = &PrettyJSONHandlerOptions{}
	}

	return &prettyJSONHandler{
		JSONHandler: slog.NewJSONHandler(w, &opts.HandlerOptions),
		out:         w,
		indent:      opts.PrettyPrint,
		opts:        &opts.HandlerOptions,
	}
}

type prettyJSONHandler struct {
	*slog.JSONHandler
	out    io.Writer
	indent bool
	opts   *slog.HandlerOptions
}

func (h prettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.indent {
		return h.JSONHandler.Handle(ctx, r)
	}

	// Render through a throwaway handler so indenting never interleaves
	// with the embedded handler's writer.
	var compact bytes.Buffer
	if err := slog.NewJSONHandler(&compact, h.opts).Handle(ctx, r); err != nil {
		return err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
		return err
	}

	_, err := h.out.Write(indented.Bytes())
	return err
}
