package fileio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pixed/paint/pixbuf"
)

// ProjectFile is the metadata filename inside a project folder.
const ProjectFile = "project.json"

// LayerMeta is the persisted description of one layer in project.json.
type LayerMeta struct {
	Name     string `json:"name"`
	Visible  bool   `json:"visible"`
	Filename string `json:"filename"`
}

// Project is the metadata object stored as project.json.
type Project struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Layers []LayerMeta `json:"layers"`
}

// Layer pairs layer metadata with its decoded pixels.
type Layer struct {
	Name    string
	Visible bool
	Pixels  *pixbuf.Buffer
}

func layerFile(i int) string { return fmt.Sprintf("layer_%03d.png", i) }

// SaveProject writes project.json plus one PNG per layer into dir,
// creating the folder if needed. Layer files are named by index.
// Writes are not transactional: a failure can leave earlier files
// behind.
func SaveProject(dir, name string, layers []Layer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "create folder", Path: dir, Err: err}
	}

	p := Project{Name: name}
	if len(layers) > 0 {
		p.Width = layers[0].Pixels.Width()
		p.Height = layers[0].Pixels.Height()
	}
	for i, l := range layers {
		fn := layerFile(i)
		if err := ExportPNG(filepath.Join(dir, fn), l.Pixels); err != nil {
			return err
		}
		p.Layers = append(p.Layers, LayerMeta{Name: l.Name, Visible: l.Visible, Filename: fn})
	}

	path := filepath.Join(dir, ProjectFile)
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// LoadProject reads project.json from dir and decodes every layer
// image. Layer files are addressed by index, matching how SaveProject
// names them; the metadata filename is informational. Every layer must
// match the project's declared dimensions.
func LoadProject(dir string) (Project, []Layer, error) {
	path := filepath.Join(dir, ProjectFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, nil, &IOError{Op: "read", Path: path, Err: err}
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, nil, &ParseError{Path: path, Err: err}
	}

	layers := make([]Layer, 0, len(p.Layers))
	for i, meta := range p.Layers {
		buf, err := ImportImage(filepath.Join(dir, layerFile(i)), p.Width, p.Height)
		if err != nil {
			return Project{}, nil, err
		}
		layers = append(layers, Layer{Name: meta.Name, Visible: meta.Visible, Pixels: buf})
	}
	return p, layers, nil
}

// Composite flattens the visible layers in order over a white base into
// a single opaque width x height buffer. Oversized layers are clipped,
// undersized ones cover only their own extent.
func Composite(width, height int, layers []Layer) *pixbuf.Buffer {
	out := pixbuf.New(width, height)
	dst := out.Bytes()
	for _, l := range layers {
		if !l.Visible || l.Pixels == nil {
			continue
		}
		src := l.Pixels.Bytes()
		lw := l.Pixels.Width()
		w := min(lw, width)
		h := min(l.Pixels.Height(), height)
		for y := 0; y < h; y++ {
			si := y * lw * 4
			di := y * width * 4
			for x := 0; x < w; x++ {
				a := uint32(src[si+3])
				dst[di+0] = uint8((uint32(src[si+0])*a + uint32(dst[di+0])*(255-a)) / 255)
				dst[di+1] = uint8((uint32(src[si+1])*a + uint32(dst[di+1])*(255-a)) / 255)
				dst[di+2] = uint8((uint32(src[si+2])*a + uint32(dst[di+2])*(255-a)) / 255)
				dst[di+3] = 255
				si += 4
				di += 4
			}
		}
	}
	return out
}
