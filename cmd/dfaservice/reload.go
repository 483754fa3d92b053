package main

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/Comcast/dfareader/tools"
	"github.com/Comcast/dfareader/util"

	"github.com/cockroachdb/errors"
	"github.com/gorhill/cronexpr"
)

// Reloader periodically loads every description in a directory into
// a Library.
type Reloader struct {
	Dir string
	Lib *Library

	schedule *cronexpr.Expression
}

// NewReloader parses the cron expression, which can have five, six,
// or seven fields.
func NewReloader(expr, dir string, lib *Library) (*Reloader, error) {
	schedule, err := cronexpr.Parse(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "bad reload schedule %q", expr)
	}
	return &Reloader{
		Dir:      dir,
		Lib:      lib,
		schedule: schedule,
	}, nil
}

// Next returns the next reload time after the given time.  A zero
// time means never again.
func (r *Reloader) Next(after time.Time) time.Time {
	return r.schedule.Next(after)
}

// Run reloads on schedule until the context is done.
func (r *Reloader) Run(ctx context.Context) {
	for {
		next := r.Next(time.Now())
		if next.IsZero() {
			log.Printf("Reloader: no more scheduled reloads")
			return
		}
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			n, err := LoadDir(ctx, r.Lib, r.Dir)
			if err != nil {
				log.Printf("Reloader: %v", err)
			}
			util.Logf("Reloader loaded %d from %s", n, r.Dir)
		}
	}
}

// descriptionExtensions are the files that LoadDir reads.
var descriptionExtensions = []string{".json", ".yaml", ".yml"}

// LoadDir Puts each description in the directory into the Library.
//
// A description without a Name is named after its file.  One bad file
// doesn't stop the others.  The returned error combines all the
// problems.
func LoadDir(ctx context.Context, lib *Library, dir string) (int, error) {
	var (
		loaded int
		errs   error
	)
	for _, ext := range descriptionExtensions {
		filenames, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return loaded, err
		}
		for _, filename := range filenames {
			desc, err := tools.ReadDescription(filename)
			if err == nil {
				if desc.Name == "" {
					desc.Name = strings.TrimSuffix(filepath.Base(filename), ext)
				}
				err = lib.Put(ctx, desc)
			}
			if err != nil {
				errs = errors.CombineErrors(errs, errors.Wrapf(err, "loading %s", filename))
				continue
			}
			loaded++
		}
	}
	return loaded, errs
}
