package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/pkg/errs"
)

// Outcome is the success flag and message every structured result carries.
// Business rejections are reported here instead of through the error return.
type Outcome struct {
	Success bool
	Message string
}

func succeeded(message string) Outcome {
	return Outcome{Success: true, Message: message}
}

// reject turns an expected business failure into a failed Outcome. Missing
// objects and infrastructure failures are handed back as errors; the latter
// are logged here since this is where their context is known.
func reject(ctx context.Context, logger *slog.Logger, err error, attrs ...any) (Outcome, error) {
	if errs.IsBusiness(err) {
		logger.InfoContext(ctx, "request rejected", append(attrs, "reason", err.Error())...)
		return Outcome{Success: false, Message: err.Error()}, nil
	}
	return Outcome{}, logUnexpected(ctx, logger, err, attrs...)
}

// logUnexpected logs err unless it is a business rejection or a missing
// object, and returns it unchanged.
func logUnexpected(ctx context.Context, logger *slog.Logger, err error, attrs ...any) error {
	if err == nil || errs.IsBusiness(err) || errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	logger.ErrorContext(ctx, "request failed", append(attrs, "error", err)...)
	return err
}
