package main

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/wroge/wgs84/v2"

	"github.com/tdewolff/rectclip"
	"github.com/tdewolff/rectclip/internal/log"
	"github.com/tdewolff/rectclip/internal/preview"
	"github.com/tdewolff/rectclip/orbclip"
)

// ErrBadRect is returned for a malformed clipping rectangle argument.
var ErrBadRect = errors.New("bad rectangle")

type Root struct{}

type SVG struct {
	Rect    string `short:"r" desc:"Clipping rectangle as left,top,right,bottom"`
	Lines   bool   `short:"l" desc:"Clip as open polylines instead of polygons"`
	Doc     bool   `desc:"Write a minified SVG document instead of path data"`
	Output  string `short:"o" desc:"Output file, stdout by default"`
	Plot    string `desc:"Write a preview image (png, svg, pdf)"`
	Open    bool   `desc:"Open the preview image"`
	Verbose bool   `short:"v" desc:"Verbose"`
	Quiet   bool   `short:"q" desc:"Quiet"`
	JSONLog bool   `name:"json-log" desc:"Log as JSON"`
	Input   string `index:"0" desc:"Input file with SVG path data, stdin by default"`
}

type GeoJSON struct {
	Rect    string `short:"r" desc:"Clipping rectangle as left,top,right,bottom in target coordinates"`
	EPSG    int    `default:"0" desc:"Reproject from WGS84 to the EPSG code before clipping"`
	Output  string `short:"o" desc:"Output file, stdout by default"`
	Plot    string `desc:"Write a preview image (png, svg, pdf)"`
	Open    bool   `desc:"Open the preview image"`
	Verbose bool   `short:"v" desc:"Verbose"`
	Quiet   bool   `short:"q" desc:"Quiet"`
	JSONLog bool   `name:"json-log" desc:"Log as JSON"`
	Input   string `index:"0" desc:"Input GeoJSON file, stdin by default"`
}

type OSM struct {
	Rect    string `short:"r" desc:"Clipping rectangle as left,top,right,bottom in target coordinates"`
	EPSG    int    `default:"0" desc:"Reproject from WGS84 to the EPSG code before clipping"`
	Output  string `short:"o" desc:"Output GeoJSON file, stdout by default"`
	Plot    string `desc:"Write a preview image (png, svg, pdf)"`
	Open    bool   `desc:"Open the preview image"`
	Verbose bool   `short:"v" desc:"Verbose"`
	Quiet   bool   `short:"q" desc:"Quiet"`
	JSONLog bool   `name:"json-log" desc:"Log as JSON"`
	Input   string `index:"0" desc:"Input OSM XML file, stdin by default"`
}

func main() {
	root := argp.NewCmd(&Root{}, "Clipping of polygons and polylines against a rectangle")
	root.AddCmd(&SVG{}, "svg", "Clip SVG path data")
	root.AddCmd(&GeoJSON{}, "geojson", "Clip the features of a GeoJSON feature collection")
	root.AddCmd(&OSM{}, "osm", "Clip the features of an OpenStreetMap XML file, writes GeoJSON")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Root) Run() error {
	return argp.ShowUsage
}

func (cmd *SVG) Run() error {
	if cmd.Rect == "" {
		fmt.Println("ERROR: must specify clipping rectangle")
		return argp.ShowUsage
	}
	if err := setupLog(cmd.Verbose, cmd.Quiet, cmd.JSONLog); err != nil {
		return err
	}
	defer log.Sync()

	rect, err := parseRect(cmd.Rect)
	if err != nil {
		return err
	}
	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	ps, err := parsePaths(data)
	if err != nil {
		return err
	}

	var out rectclip.Paths[float64]
	if cmd.Lines {
		out = rectclip.NewRectClipLines(rect).Execute(ps)
	} else {
		out = rectclip.NewRectClip(rect).Execute(ps)
	}
	logStats(rect, ps, out)

	b := &bytes.Buffer{}
	if cmd.Doc {
		if err := writeDocument(b, rect, out, !cmd.Lines); err != nil {
			return err
		}
	} else {
		for _, p := range out {
			b.WriteString(p.ToSVG(!cmd.Lines))
			b.WriteByte('\n')
		}
	}
	if err := writeOutput(cmd.Output, b.Bytes()); err != nil {
		return err
	}
	return writePreview(cmd.Plot, cmd.Open, rect, ps, out, preview.Options{
		Title:  "rectclip " + cmd.Rect,
		Closed: !cmd.Lines,
		FlipY:  true,
	})
}

func (cmd *GeoJSON) Run() error {
	if cmd.Rect == "" {
		fmt.Println("ERROR: must specify clipping rectangle")
		return argp.ShowUsage
	}
	if err := setupLog(cmd.Verbose, cmd.Quiet, cmd.JSONLog); err != nil {
		return err
	}
	defer log.Sync()

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return fmt.Errorf("parse geojson: %w", err)
	}
	return cmd.clip(fc)
}

func (cmd *OSM) Run() error {
	if cmd.Rect == "" {
		fmt.Println("ERROR: must specify clipping rectangle")
		return argp.ShowUsage
	}
	if err := setupLog(cmd.Verbose, cmd.Quiet, cmd.JSONLog); err != nil {
		return err
	}
	defer log.Sync()

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	o := &osm.OSM{}
	if err := xml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("parse osm: %w", err)
	}
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return fmt.Errorf("convert osm: %w", err)
	}
	log.Debugf("converted %d nodes, %d ways and %d relations into %d features", len(o.Nodes), len(o.Ways), len(o.Relations), len(fc.Features))

	g := &GeoJSON{
		Rect:   cmd.Rect,
		EPSG:   cmd.EPSG,
		Output: cmd.Output,
		Plot:   cmd.Plot,
		Open:   cmd.Open,
	}
	return g.clip(fc)
}

func (cmd *GeoJSON) clip(fc *geojson.FeatureCollection) error {
	rect, err := parseRect(cmd.Rect)
	if err != nil {
		return err
	}
	bound := orb.Bound{Min: orb.Point{rect.Left, rect.Top}, Max: orb.Point{rect.Right, rect.Bottom}}

	if cmd.EPSG != 0 {
		transform := wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(cmd.EPSG))
		proj := func(p orb.Point) orb.Point {
			x, y, _ := transform(p[0], p[1], 0.0)
			return orb.Point{x, y}
		}
		for _, f := range fc.Features {
			if f.Geometry != nil {
				f.Geometry = project.Geometry(f.Geometry, proj)
			}
		}
		log.Debugf("reprojected %d features to EPSG:%d", len(fc.Features), cmd.EPSG)
	}

	clipped := orbclip.FeatureCollection(bound, fc)
	log.Infof("clipped %d features, %d remain", len(fc.Features), len(clipped.Features))

	b, err := clipped.MarshalJSON()
	if err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	if err := writeOutput(cmd.Output, append(b, '\n')); err != nil {
		return err
	}

	if cmd.Plot != "" {
		var in, out rectclip.Paths[float64]
		for _, f := range fc.Features {
			in = append(in, geometryPaths(f.Geometry)...)
		}
		for _, f := range clipped.Features {
			out = append(out, geometryPaths(f.Geometry)...)
		}
		return writePreview(cmd.Plot, cmd.Open, rect, in, out, preview.Options{
			Title: "rectclip " + cmd.Rect,
		})
	}
	return nil
}

////////////////////////////////////////////////////////////////

func setupLog(verbose, quiet, json bool) error {
	if quiet {
		log.Level = 0
	} else if verbose {
		log.Level = 2
	}
	if json {
		if err := log.Build(); err != nil {
			return err
		}
		log.JSON = true
	}
	return nil
}

// parseRect parses a rectangle given as left,top,right,bottom where top is the smallest y coordinate.
func parseRect(s string) (rectclip.Rect[float64], error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return rectclip.Rect[float64]{}, fmt.Errorf("%w: %q should have four comma separated numbers", ErrBadRect, s)
	}

	var vals [4]float64
	for i, field := range fields {
		field = strings.TrimSpace(field)
		f, n := strconv.ParseFloat([]byte(field))
		if n == 0 || n != len(field) {
			return rectclip.Rect[float64]{}, fmt.Errorf("%w: bad number %q", ErrBadRect, field)
		}
		vals[i] = f
	}
	rect := rectclip.Rect[float64]{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	if rect.IsEmpty() {
		return rect, fmt.Errorf("%w: %v is empty", ErrBadRect, rect)
	}
	return rect, nil
}

// parsePaths parses SVG path data, one or more paths per line.
func parsePaths(data []byte) (rectclip.Paths[float64], error) {
	var ps rectclip.Paths[float64]
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(nil, 64*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lps, err := rectclip.ParseSVGPath(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		ps = append(ps, lps...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}

// geometryPaths returns the lines and rings of a geometry for previewing.
func geometryPaths(g orb.Geometry) rectclip.Paths[float64] {
	line := func(ls []orb.Point) rectclip.Path[float64] {
		p := make(rectclip.Path[float64], len(ls))
		for i, pt := range ls {
			p[i] = rectclip.Point[float64]{X: pt[0], Y: pt[1]}
		}
		return p
	}

	var ps rectclip.Paths[float64]
	switch g := g.(type) {
	case orb.LineString:
		ps = append(ps, line(g))
	case orb.MultiLineString:
		for _, ls := range g {
			ps = append(ps, line(ls))
		}
	case orb.Ring:
		ps = append(ps, line(g))
	case orb.Polygon:
		for _, r := range g {
			ps = append(ps, line(r))
		}
	case orb.MultiPolygon:
		for _, p := range g {
			for _, r := range p {
				ps = append(ps, line(r))
			}
		}
	case orb.Bound:
		ps = append(ps, line(g.ToRing()))
	case orb.Collection:
		for _, c := range g {
			ps = append(ps, geometryPaths(c)...)
		}
	}
	return ps
}

func logStats(rect rectclip.Rect[float64], in, out rectclip.Paths[float64]) {
	inside, outside := 0, 0
	for _, b := range rectclip.Bounds(in) {
		if !rect.Intersects(b) {
			outside++
		} else if rect.Contains(b) {
			inside++
		}
	}
	log.Infof("clipped %d paths into %d paths", len(in), len(out))
	log.Debugf("%d paths inside and %d paths outside %v", inside, outside, rect)
}

func writeDocument(w io.Writer, rect rectclip.Rect[float64], ps rectclip.Paths[float64], closed bool) error {
	fill := "none"
	if closed {
		fill = "black"
	}

	b := &bytes.Buffer{}
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%v %v %v %v">`, rect.Left, rect.Top, rect.Width(), rect.Height())
	fmt.Fprintf(b, `<path fill="%s" stroke="black" stroke-width="1" d="%s"/>`, fill, ps.ToSVG(closed))
	b.WriteString(`</svg>`)

	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	if err := m.Minify("image/svg+xml", w, b); err != nil {
		return fmt.Errorf("minify svg: %w", err)
	}
	return nil
}

func writePreview(filename string, open bool, rect rectclip.Rect[float64], in, out rectclip.Paths[float64], opts preview.Options) error {
	if filename == "" {
		return nil
	}
	if err := preview.Save(filename, rect, in, out, opts); err != nil {
		return err
	}
	log.Debugf("wrote preview to %s", filename)
	if open {
		if err := browser.OpenFile(filename); err != nil {
			log.Warnf("open preview: %v", err)
		}
	}
	return nil
}

func readInput(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func writeOutput(filename string, data []byte) error {
	if filename == "" || filename == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
