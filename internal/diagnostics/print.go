package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var headingColor = color.New(color.Bold)

// printer remembers the first write error so the report can be written
// without checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) heading(title string, first bool) {
	if p.err != nil {
		return
	}
	if !first {
		p.printf("\n")
	}
	if _, err := headingColor.Fprintln(p.w, title); err != nil {
		p.err = err
		return
	}
	p.printf("%s\n", strings.Repeat("=", len(title)))
}

// Write renders r to w in the order the sections are collected.
func Write(w io.Writer, r Report) error {
	p := &printer{w: w}

	p.heading("Platform Information:", true)
	p.printf("Platform: %s\n", r.Platform)
	p.printf("OS Type: %s\n", r.OSType)
	p.printf("Home Directory: %s\n", r.Home)
	p.printf("Current Directory: %s\n", r.Cwd)

	p.heading("Environment Variables:", false)
	for _, e := range r.Env {
		p.printf("%s: %s\n", e.Name, e.Value)
	}

	p.heading("Path Tests:", false)
	for _, ex := range r.Paths {
		p.printf("\nOriginal: %s\n", ex.Original)
		p.printf("Normalized: %s\n", ex.Normalized)
		p.printf("POSIX: %s\n", ex.Posix)
	}

	p.heading("VSCode Variable Examples:", false)
	for _, v := range r.Variables {
		p.printf("%s would resolve to: %s\n", v.Template, v.Value)
	}

	p.heading("Docker Mount Path Examples:", false)
	p.printf("%s mount source: %s\n", r.Mount.Label, r.Mount.Source)
	p.printf("Docker mount target: %s\n", r.Mount.Target)

	return p.err
}
