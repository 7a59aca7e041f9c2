package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/benoitkugler/svgchart/chart"
	"github.com/benoitkugler/svgchart/dataset"
	"github.com/sirupsen/logrus/hooks/test"
)

const csvData = `x,a,b
0,1,4
1,2,3
2,4,1
3,3,2
`

func writeInput(t *testing.T, dir string) string {
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestFormats(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)

	for _, format := range []string{"svg", "png", "pdf"} {
		output := filepath.Join(dir, "chart."+format)
		if err := execute("-o", output, "--log-level", "error", input); err != nil {
			t.Fatalf("%s: %s", format, err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		switch format {
		case "svg":
			if !bytes.Contains(data, []byte("<svg")) {
				t.Errorf("invalid svg output")
			}
		case "png":
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
				t.Errorf("unexpected image size %v", b)
			}
		case "pdf":
			if !bytes.HasPrefix(data, []byte("%PDF")) {
				t.Errorf("invalid pdf output")
			}
		}
	}
}

func svgSize(t *testing.T, data []byte) (float64, float64) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("no svg element: %s", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "svg" {
			continue
		}
		var w, h float64
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "width":
				w, _ = strconv.ParseFloat(strings.TrimSuffix(a.Value, "px"), 64)
			case "height":
				h, _ = strconv.ParseFloat(strings.TrimSuffix(a.Value, "px"), 64)
			}
		}
		return w, h
	}
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	config := filepath.Join(dir, "config.json")
	err := os.WriteFile(config, []byte(`{"width": 300, "height": 200, "colors": ["#000"], "xScale": "range"}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.svg")
	if err := execute("--config", config, "--height", "250", "-o", output, input); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := svgSize(t, data); w != 300 || h != 250 {
		t.Errorf("expected 300 x 250, got %v x %v", w, h)
	}
	if !bytes.Contains(data, []byte("stroke:#000;stroke-width:2")) {
		t.Errorf("expected curves drawn with the configured color")
	}
}

func TestInvalidArguments(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	for _, args := range [][]string{
		{"-o", filepath.Join(dir, "out.gif"), input},
		{"-o", filepath.Join(dir, "out.svg"), "--log-level", "loud", input},
		{"-o", filepath.Join(dir, "out.svg"), "--config", filepath.Join(dir, "missing.json"), input},
		{"-o", filepath.Join(dir, "out.svg"), "--grid-x", "0", input},
		{"-o", filepath.Join(dir, "out.svg"), "--x-scale", "log", input},
		{"-o", filepath.Join(dir, "out.svg"), filepath.Join(dir, "missing.csv")},
		{"-o", filepath.Join(dir, "out.svg")},
	} {
		if err := execute(args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "out.svg")); !os.IsNotExist(err) {
		t.Errorf("no output should be written on error")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timeout")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "chart.svg")

	logger, hook := test.NewNullLogger()
	settings := chart.DefaultSettings()
	settings.Logger = logger
	r := renderer{
		inputs:   []string{input},
		output:   output,
		format:   "svg",
		settings: settings,
		dsOpts:   dataset.Options{},
		log:      logger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- r.watch(ctx) }()

	waitFor(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Message == "watching inputs" {
				return true
			}
		}
		return false
	})
	if err := os.WriteFile(input, []byte(csvData+"4,5,0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		_, err := os.Stat(output)
		return err == nil
	})

	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}
