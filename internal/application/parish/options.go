package parish

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WriteRecorder counts successful writes per resource
type WriteRecorder interface {
	EntryWritten(ctx context.Context, resource, operation string)
}

type nopRecorder struct{}

func (nopRecorder) EntryWritten(context.Context, string, string) {}

// Options carries what the parish services share
type Options struct {
	Location *time.Location
	Now      func() time.Time
	Metrics  WriteRecorder
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Metrics == nil {
		o.Metrics = nopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
