package templates

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/internal/xerrors"
	"github.com/astrosnid/snid/internal/xlog"
)

// indexFile is the on-disk schema of index.json: type name -> ordered list
// of template file stems (without the .flat.gob extension).
type indexFile struct {
	Types map[string][]string `json:"types"`
}

// templateMeta is the per-template metadata record stored alongside the
// binary flux file, <stem>.meta.json.
type templateMeta struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Subtype   string  `json:"subtype"`
	AgeDays   float64 `json:"age_days"`
	Quality   float64 `json:"quality"`
	LeftEdge  int     `json:"left_edge"`
	RightEdge int     `json:"right_edge"`
}

// Loader builds a Library from a base directory and an optional user
// override directory, each laid out as:
//
//	index.json              {"types": {"Ia": ["sn1994d"], ...}}
//	<stem>.meta.json         templateMeta
//	<stem>.flat.gob          gob-encoded []float32, length N
//
// A type bucket present in the user index entirely replaces the base
// bucket for that type.
type Loader struct {
	PadTo int // FFT zero-pad length; defaults to grid.NextPow2(2*g.N)
}

// Load builds the merged Library. userDir may be empty to skip user
// overrides.
func (l Loader) Load(baseDir, userDir string, g grid.Grid) (*Library, error) {
	logger := xlog.WithFields(xlog.Fields{"component": "templates", "base_dir": baseDir, "user_dir": userDir})

	padTo := l.PadTo
	if padTo == 0 {
		padTo = grid.NextPow2(2 * g.N)
	}
	f := grid.NewFFT()

	byType, err := loadDir(baseDir, g, f, padTo)
	if err != nil {
		return nil, xerrors.New(xerrors.BadInput, "templates.Loader.Load", err)
	}

	if userDir != "" {
		userByType, err := loadDir(userDir, g, f, padTo)
		if err != nil {
			return nil, xerrors.New(xerrors.BadInput, "templates.Loader.Load", err)
		}
		for typ, list := range userByType {
			logger.Debug("user index overrides type bucket", xlog.Fields{"type": typ, "count": len(list)})
			byType[typ] = list
		}
	}

	lib := newLibrary(byType)
	logger.Info("template library loaded", xlog.Fields{"types": len(byType), "templates": lib.Len()})
	return lib, nil
}

func loadDir(dir string, g grid.Grid, f *grid.FFT, padTo int) (map[string][]*Template, error) {
	idxPath := filepath.Join(dir, "index.json")
	raw, err := os.ReadFile(idxPath)
	if err != nil {
		return nil, err
	}

	var idx indexFile
	if err := json.Unmarshal(raw, &idx); err != nil {
		return nil, err
	}

	byType := make(map[string][]*Template, len(idx.Types))
	for typ, stems := range idx.Types {
		list := make([]*Template, 0, len(stems))
		for _, stem := range stems {
			t, err := loadOne(dir, stem, g)
			if err != nil {
				return nil, err
			}
			t.precompute(f, padTo)
			list = append(list, t)
		}
		byType[typ] = list
	}
	return byType, nil
}

func loadOne(dir, stem string, g grid.Grid) (*Template, error) {
	metaRaw, err := os.ReadFile(filepath.Join(dir, stem+".meta.json"))
	if err != nil {
		return nil, err
	}
	var meta templateMeta
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, err
	}

	fluxFile, err := os.Open(filepath.Join(dir, stem+".flat.gob"))
	if err != nil {
		return nil, err
	}
	defer fluxFile.Close()

	var flux32 []float32
	if err := gob.NewDecoder(fluxFile).Decode(&flux32); err != nil {
		return nil, err
	}

	flux := make([]float64, g.N)
	for i, v := range flux32 {
		if i >= g.N {
			break
		}
		flux[i] = float64(v)
	}

	return &Template{
		Name:      meta.Name,
		Type:      meta.Type,
		Subtype:   meta.Subtype,
		AgeDays:   meta.AgeDays,
		Quality:   meta.Quality,
		FlatFlux:  flux,
		LeftEdge:  meta.LeftEdge,
		RightEdge: meta.RightEdge,
	}, nil
}
