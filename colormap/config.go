// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-chartcore/charterr"
	"github.com/aclements/go-chartcore/chartlog"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a colormap file.
type Format int

const (
	// YAML and TOML files hold a Definition.
	YAML Format = iota
	TOML
	// Text files hold one color per line as "r g b [a]". Components
	// are in [0, 1], or in [0, 255] if any component exceeds 1.
	// Blank lines and lines starting with '#' are ignored.
	Text
)

// FormatFor returns the format of path from its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".txt", ".pal", ".rgb":
		return Text, nil
	}
	return 0, charterr.Configf("unknown colormap file type %q", filepath.Ext(path))
}

// A Definition describes a colormap. Exactly one of Palette, Colors
// and Segments is set.
type Definition struct {
	Name string `yaml:"name" toml:"name"`

	// Steps overrides the number of color bands.
	Steps int `yaml:"steps,omitempty" toml:"steps,omitempty"`

	// Palette lists colors by name (as in x/image/colornames) or as
	// "#rrggbb" or "#rrggbbaa".
	Palette []string `yaml:"palette,omitempty" toml:"palette,omitempty"`

	// Colors lists colors as 3 or 4 components in [0, 1].
	Colors [][]float64 `yaml:"colors,omitempty" toml:"colors,omitempty"`

	// Segments maps a channel name to its [x, y0, y1] breakpoints.
	Segments map[string][][]float64 `yaml:"segments,omitempty" toml:"segments,omitempty"`
}

// SegmentMap returns the validated segment map of d.
func (d *Definition) SegmentMap() (SegmentMap, error) {
	set := 0
	for _, ok := range []bool{len(d.Palette) > 0, len(d.Colors) > 0, len(d.Segments) > 0} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, charterr.Configf("colormap %q needs exactly one of palette, colors and segments", d.Name)
	}

	var seg SegmentMap
	var err error
	switch {
	case len(d.Palette) > 0:
		colors := make([][]float64, len(d.Palette))
		for i, name := range d.Palette {
			c, err := ParseColor(name)
			if err != nil {
				return nil, charterr.Annotatef(err, "colormap %q", d.Name)
			}
			colors[i] = []float64{
				float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255,
			}
		}
		seg, err = Uniform(colors)
	case len(d.Colors) > 0:
		seg, err = Uniform(d.Colors)
	default:
		seg = make(SegmentMap, len(d.Segments))
		for name, rows := range d.Segments {
			ch, err := ParseChannel(name)
			if err != nil {
				return nil, charterr.Annotatef(err, "colormap %q", d.Name)
			}
			for i, r := range rows {
				if len(r) != 3 {
					return nil, charterr.Configf("colormap %q: %s breakpoint %d has %d values, want 3", d.Name, name, i, len(r))
				}
				seg[ch] = append(seg[ch], Segment{r[0], r[1], r[2]})
			}
		}
	}
	if err != nil {
		return nil, charterr.Annotatef(err, "colormap %q", d.Name)
	}
	norm, err := seg.validate()
	if err != nil {
		return nil, charterr.Annotatef(err, "colormap %q", d.Name)
	}
	return norm, nil
}

// Mapper returns a ColorMapper for d over r.
func (d *Definition) Mapper(r Range) (*ColorMapper, error) {
	seg, err := d.SegmentMap()
	if err != nil {
		return nil, err
	}
	c, err := New(seg, r)
	if err != nil {
		return nil, err
	}
	steps := d.Steps
	if steps == 0 && len(d.Palette)+len(d.Colors) > 0 {
		steps = len(d.Palette) + len(d.Colors)
	}
	if steps != 0 {
		if err := c.SetSteps(steps); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds d to the named colormaps.
func (d *Definition) Register() error {
	seg, err := d.SegmentMap()
	if err != nil {
		return err
	}
	return Register(d.Name, seg)
}

// LoadFile reads a colormap definition from path. Text files are
// named after the file.
func LoadFile(path string) (*Definition, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f, format)
	if err != nil {
		return nil, charterr.Annotatef(err, "%s", path)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	chartlog.For("colormap").WithField("path", path).Debug("loaded colormap definition")
	return d, nil
}

// Load reads a colormap definition in the given format from r.
func Load(r io.Reader, format Format) (*Definition, error) {
	d := new(Definition)
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil {
			return nil, charterr.Configf("bad YAML colormap: %v", err)
		}
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, charterr.Configf("bad TOML colormap: %v", err)
		}
	case Text:
		colors, err := readText(r)
		if err != nil {
			return nil, err
		}
		d.Colors = colors
	default:
		return nil, charterr.Configf("unknown colormap format %d", format)
	}
	return d, nil
}

func readText(r io.Reader) ([][]float64, error) {
	var colors [][]float64
	over1 := false
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 && len(fields) != 4 {
			return nil, charterr.Configf("line %d: %d color components, want 3 or 4", line, len(fields))
		}
		c := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, charterr.Configf("line %d: %v", line, err)
			}
			if v > 1 {
				over1 = true
			}
			c[i] = v
		}
		colors = append(colors, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if over1 {
		for _, c := range colors {
			for i := range c {
				c[i] /= 255
			}
		}
	}
	return colors, nil
}

// ParseColor parses a color name from x/image/colornames or a hex
// color "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, charterr.Configf("unknown color %q", s)
		}
		return color.NRGBA{c.R, c.G, c.B, c.A}, nil
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 4 {
		return color.NRGBA{}, charterr.Configf("bad hex color %q", s)
	}
	return color.NRGBA{b[0], b[1], b[2], b[3]}, nil
}

// Marshal encodes d in format. Text output lists the color rows of
// d.Colors.
func (d *Definition) Marshal(format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(d)
	case TOML:
		return toml.Marshal(d)
	case Text:
		if len(d.Colors) == 0 {
			return nil, charterr.Configf("colormap %q has no color rows", d.Name)
		}
		var buf bytes.Buffer
		for _, c := range d.Colors {
			for i, v := range c {
				if i > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	}
	return nil, charterr.Configf("unknown colormap format %d", format)
}
