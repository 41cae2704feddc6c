// Package webpage writes the standalone HTML page hosting both panes.
//
// The page is the header followed by the 2D and 3D sections in that order.
// Each enabled section declares its container; the bootstrap script comes
// from mounting the view page against the script backend, so whatever the
// markup leaves out simply never mounts.
package webpage

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/matzehuels/depview/pkg/buildinfo"
	"github.com/matzehuels/depview/pkg/config"
	"github.com/matzehuels/depview/pkg/errors"
	"github.com/matzehuels/depview/pkg/graph"
	"github.com/matzehuels/depview/pkg/view"
	"github.com/matzehuels/depview/pkg/view/script"
)

//go:embed page.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// Options configures the page.
type Options struct {
	Title   string
	Graph   graph.Graph
	Panes   config.PanesConfig
	Scripts config.ScriptsConfig
}

// OptionsFromConfig copies the page settings out of cfg.
func OptionsFromConfig(cfg config.Config, g graph.Graph) Options {
	return Options{Title: cfg.Title, Graph: g, Panes: cfg.Panes, Scripts: cfg.Scripts}
}

type section struct {
	Heading        string
	ContainerID    string
	SectionStyle   template.CSS
	HeadingStyle   template.CSS
	ContainerStyle template.CSS
}

type pageData struct {
	Version     string
	Title       string
	HeaderStyle template.CSS
	Scripts     []string
	Sections    []section
	Bootstrap   template.JS
}

// Render writes the complete HTML document to w.
func Render(w io.Writer, opts Options) error {
	data, err := build(opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "execute page template")
	}
	_, err = buf.WriteTo(w)
	return err
}

func build(opts Options) (pageData, error) {
	bundle := script.New()
	page := view.NewPage(opts.Title, bundle.Backend(script.Kind2D), bundle.Backend(script.Kind3D))

	enabled := map[string]bool{"2d": opts.Panes.Graph2D, "3d": opts.Panes.Graph3D}
	urls := map[string]string{"2d": opts.Scripts.ForceGraph, "3d": opts.Scripts.ForceGraph3D}

	data := pageData{
		Version:     buildinfo.Version,
		Title:       page.Header.Title,
		HeaderStyle: template.CSS(page.Header.Style.String()),
	}
	var ids []string
	for _, p := range page.Panes {
		if !enabled[p.Name] {
			continue
		}
		ids = append(ids, p.ContainerID)
		if u := urls[p.Name]; u != "" {
			data.Scripts = append(data.Scripts, u)
		}
		data.Sections = append(data.Sections, section{
			Heading:        p.Heading,
			ContainerID:    p.ContainerID,
			SectionStyle:   template.CSS(p.Style.Section.String()),
			HeadingStyle:   template.CSS(p.Style.Heading.String()),
			ContainerStyle: template.CSS(p.Style.Container.String()),
		})
	}

	page.Mount(view.NewStaticDocument(ids...), opts.Graph)
	defer page.Unmount()

	js, err := bundle.Script()
	if err != nil {
		return pageData{}, errors.Wrap(errors.ErrCodeInvalidGraph, err, "build bootstrap script")
	}
	data.Bootstrap = template.JS(js)
	return data, nil
}
