// Package project persists FloorCalc data as JSON: the application config,
// the product catalog, backups and project files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/FloorCalc/internal/model"
)

// FileExtension is the extension used for saved projects.
const FileExtension = ".floorcalc"

// fileFormatVersion is bumped when the project file layout changes.
const fileFormatVersion = 1

// projectFile is the on-disk form of a project. Results are never stored;
// they are recomputed from the rooms when the project is opened.
type projectFile struct {
	Version int              `json:"version"`
	Name    string           `json:"name"`
	Units   model.UnitSystem `json:"units"`
	Rooms   []model.Room     `json:"rooms"`
}

// SaveProject writes the project's name, units and rooms to path.
func SaveProject(path string, p model.Project) error {
	rooms := p.Rooms
	if rooms == nil {
		rooms = []model.Room{}
	}
	return writeJSON(path, projectFile{
		Version: fileFormatVersion,
		Name:    p.Name,
		Units:   p.Units,
		Rooms:   rooms,
	})
}

// LoadProject reads a project saved by SaveProject. Rooms are returned as
// saved, so invalid dimensions are reported when the project is calculated,
// not when it is opened. Unknown materials and patterns fall back to tile
// and straight.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	var f projectFile
	if err := json.Unmarshal(data, &f); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project: %w", err)
	}
	if f.Version > fileFormatVersion {
		return model.Project{}, fmt.Errorf("project file version %d is newer than supported version %d", f.Version, fileFormatVersion)
	}

	p := model.NewProject()
	if name := strings.TrimSpace(f.Name); name != "" {
		p.Name = name
	}
	if f.Units == model.UnitsMetric {
		p.Units = model.UnitsMetric
	}
	for _, r := range f.Rooms {
		if !r.Material.Valid() {
			r.Material = model.MaterialTile
		}
		if !r.Pattern.Valid() {
			r.Pattern = model.PatternStraight
		}
		p.Rooms = append(p.Rooms, r)
	}
	return p, nil
}

// EnsureExtension appends FileExtension to path unless it is already there.
func EnsureExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), FileExtension) {
		return path
	}
	return path + FileExtension
}
