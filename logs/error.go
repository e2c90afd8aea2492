package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins err with the span of ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFromContext(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("run: %s", span))
}
