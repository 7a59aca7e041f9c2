package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/benoitkugler/svgchart/chart"
	"github.com/benoitkugler/svgchart/dataset"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgdraw"
	"github.com/benoitkugler/svgchart/svgpdf"
	"github.com/benoitkugler/svgchart/svgraster"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// surfaces maps the output formats to their backend
var surfaces = map[string]func(w io.Writer, width, height float64) svgdraw.Surface{
	"svg": func(w io.Writer, width, height float64) svgdraw.Surface { return svgdoc.New(w, width, height) },
	"png": func(w io.Writer, width, height float64) svgdraw.Surface { return svgraster.New(w, width, height) },
	"pdf": func(w io.Writer, width, height float64) svgdraw.Surface { return svgpdf.New(w, width, height) },
}

type renderer struct {
	inputs   []string
	output   string
	format   string
	settings chart.Settings
	dsOpts   dataset.Options
	log      logrus.FieldLogger
}

// render draws every series of the inputs, in order, on a new chart.
// The output file is only replaced on success.
func (r renderer) render() error {
	var all []chart.Series
	for _, input := range r.inputs {
		ds, err := dataset.Load(input, r.dsOpts)
		if err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{"file": input, "series": len(ds.Series)}).Debug("dataset loaded")
		all = append(all, ds.Series...)
	}

	var buf bytes.Buffer
	surface := surfaces[r.format](&buf, r.settings.Width, r.settings.Height)
	c, err := chart.New(surface, r.settings)
	if err != nil {
		return err
	}
	for _, s := range all {
		c.Plot(s)
	}
	if err := c.Done(); err != nil {
		return fmt.Errorf("rendering %s: %w", r.output, err)
	}

	tmp := r.output + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp, r.output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	r.log.WithFields(logrus.Fields{"output": r.output, "series": len(all)}).Info("chart rendered")
	return nil
}

// watch renders again each time an input is written, until
// the context is canceled. Render errors are logged.
func (r renderer) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// directories are watched, so that files replaced
	// by a rename are still seen
	inputs := map[string]bool{}
	dirs := map[string]bool{}
	for _, input := range r.inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return err
		}
		inputs[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed watching %s: %w", dir, err)
		}
	}
	r.log.WithField("files", len(inputs)).Info("watching inputs")

	for {
		select {
		case <-ctx.Done():
			r.log.Info("stop watching")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !inputs[name] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			r.log.WithField("file", ev.Name).Debug("input changed")
			if err := r.render(); err != nil {
				r.log.WithError(err).Error("render failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.WithError(err).Warn("watcher error")
		}
	}
}
