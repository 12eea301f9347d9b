package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects and rooms
	DefaultUnits           UnitSystem `json:"default_units"`
	DefaultMaterial        Material   `json:"default_material"`
	DefaultPattern         Pattern    `json:"default_pattern"`
	DefaultCostPerUnit     float64    `json:"default_cost_per_unit"`
	DefaultPackageCoverage float64    `json:"default_package_coverage"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig matching the blank room form:
// imperial units, tile laid straight, no price and no package size.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultUnits:    UnitsImperial,
		DefaultMaterial: MaterialTile,
		DefaultPattern:  PatternStraight,
		RecentProjects:  []string{},
		Theme:           "system",
	}
}

// NewProject creates an empty project using the configured unit system.
func (c AppConfig) NewProject() Project {
	p := NewProject()
	if c.DefaultUnits == UnitsMetric {
		p.Units = UnitsMetric
	}
	return p
}

// ApplyToRoom copies the configured defaults into a freshly created room.
func (c AppConfig) ApplyToRoom(r *Room) {
	if c.DefaultMaterial.Valid() {
		r.Material = c.DefaultMaterial
	}
	if c.DefaultPattern.Valid() {
		r.Pattern = c.DefaultPattern
	}
	r.CostPerUnit = c.DefaultCostPerUnit
	r.PackageCoverage = c.DefaultPackageCoverage
}

// AddRecentProject moves path to the front of the recent list, keeping at most max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentProjects = recent
}
