package objectid

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/objectid/pkg/idgen"
	"github.com/outofforest/objectid/pkg/oid"
	"github.com/outofforest/run"
)

// Main is the entrypoint of the command.
func Main() {
	run.New().Run(context.Background(), "objectid", func(ctx context.Context) error {
		cfg, err := ConfigFromArgs(os.Args[1:])
		if err != nil {
			return err
		}
		return Execute(ctx, cfg, os.Stdin, os.Stdout)
	})
}

// Execute runs the command.
func Execute(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) error {
	switch cfg.Mode {
	case ModeInspect:
		return inspect(ctx, cfg.Args, stdin, stdout)
	case ModeEqual:
		return equal(cfg.Args[0], cfg.Args[1], stdout)
	default:
		return generate(ctx, cfg, stdout)
	}
}

func generate(ctx context.Context, cfg Config, stdout io.Writer) error {
	log := logger.Get(ctx)

	var ids []oid.ID
	if cfg.TimestampOnly {
		ts := uint32(time.Now().Unix())
		if cfg.Timestamp != nil {
			ts = *cfg.Timestamp
		}
		ids = lo.Times(cfg.Count, func(int) oid.ID { return oid.FromTimestamp(ts) })
	} else {
		gen := idgen.FromContext(ctx)
		if cfg.Timestamp != nil {
			gen = idgen.At(gen, *cfg.Timestamp)
		}

		var err error
		ids, err = idgen.Batch(ctx, gen, cfg.Workers, cfg.Count)
		if err != nil {
			return err
		}
		if duplicates := lo.FindDuplicates(ids); len(duplicates) > 0 {
			return errors.Errorf("duplicated identifiers generated: %v", duplicates)
		}
	}

	for _, id := range ids {
		if _, err := fmt.Fprintln(stdout, id); err != nil {
			return errors.WithStack(err)
		}
	}

	log.Info("Identifiers generated", zap.Int("count", len(ids)), zap.Int("workers", cfg.Workers))
	return nil
}

func inspect(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	var ids []oid.ID
	if len(args) > 0 {
		for _, arg := range args {
			id, err := oid.FromBytes([]byte(arg))
			if err != nil {
				return errors.Wrapf(err, "decoding identifier %q failed", arg)
			}
			ids = append(ids, id)
		}
	} else {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return errors.WithStack(err)
		}
		ids = idgen.FindAll(string(text))
		logger.Get(ctx).Debug("Identifiers found on standard input", zap.Int("count", len(ids)))
	}

	for _, id := range ids {
		pu := id.ProcessUnique()
		if _, err := fmt.Fprintf(stdout, "%s timestamp=%d time=%s processUnique=%x counter=%d\n",
			id, id.Timestamp(), id.Time().Format(time.RFC3339), pu[:], id.Counter()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// equal compares identifiers symmetrically: an argument which is not an
// identifier is unequal to the other one, unless neither of them decodes.
func equal(a, b string, stdout io.Writer) error {
	id, err := oid.FromBytes([]byte(a))
	if err != nil {
		var errB error
		id, errB = oid.FromBytes([]byte(b))
		if errB != nil {
			return errors.Wrapf(err, "decoding identifier %q failed", a)
		}
		b = a
	}
	_, err = fmt.Fprintln(stdout, id.EqualString(b))
	return errors.WithStack(err)
}
