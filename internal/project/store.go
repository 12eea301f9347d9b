package project

import (
	"path/filepath"

	"github.com/piwi3910/FloorCalc/internal/model"
	"go.uber.org/zap"
)

// maxRecentProjects caps AppConfig.RecentProjects.
const maxRecentProjects = 10

// Store ties the file functions in this package to one config directory
// and logs what it reads and writes. Load failures fall back to defaults
// so the application can always start.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore returns a Store rooted at dir. An empty dir means DefaultConfigDir
// and a nil logger discards output.
func NewStore(dir string, logger *zap.Logger) *Store {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger.Named("project")}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string { return s.dir }

// ConfigPath returns the path of config.json inside the store directory.
func (s *Store) ConfigPath() string { return filepath.Join(s.dir, "config.json") }

// CatalogPath returns the path of catalog.json inside the store directory.
func (s *Store) CatalogPath() string { return filepath.Join(s.dir, "catalog.json") }

// LoadConfig returns the saved config, or the defaults if it cannot be read.
func (s *Store) LoadConfig() model.AppConfig {
	cfg, err := LoadAppConfig(s.ConfigPath())
	if err != nil {
		s.logger.Warn("using default config", zap.String("path", s.ConfigPath()), zap.Error(err))
		return model.DefaultAppConfig()
	}
	s.logger.Debug("loaded config", zap.String("path", s.ConfigPath()))
	return cfg
}

// SaveConfig writes cfg to the store directory.
func (s *Store) SaveConfig(cfg model.AppConfig) error {
	if err := SaveAppConfig(s.ConfigPath(), cfg); err != nil {
		s.logger.Error("failed to save config", zap.String("path", s.ConfigPath()), zap.Error(err))
		return err
	}
	return nil
}

// LoadCatalog returns the saved catalog, creating the default one on first
// run. An unreadable catalog is replaced by the defaults in memory only.
func (s *Store) LoadCatalog() model.Catalog {
	cat, err := LoadCatalog(s.CatalogPath())
	if err != nil {
		s.logger.Warn("using default catalog", zap.String("path", s.CatalogPath()), zap.Error(err))
		return model.DefaultCatalog()
	}
	s.logger.Debug("loaded catalog", zap.Int("products", len(cat.Products)))
	return cat
}

// SaveCatalog writes cat to the store directory.
func (s *Store) SaveCatalog(cat model.Catalog) error {
	if err := SaveCatalog(s.CatalogPath(), cat); err != nil {
		s.logger.Error("failed to save catalog", zap.String("path", s.CatalogPath()), zap.Error(err))
		return err
	}
	return nil
}

// SaveProject writes p to path and records it in cfg's recent projects.
// The updated config is saved as well; a failure there is only logged.
func (s *Store) SaveProject(path string, p model.Project, cfg *model.AppConfig) error {
	if err := SaveProject(path, p); err != nil {
		s.logger.Error("failed to save project", zap.String("path", path), zap.Error(err))
		return err
	}
	s.logger.Info("saved project", zap.String("path", path), zap.Int("rooms", len(p.Rooms)))
	s.remember(path, cfg)
	return nil
}

// OpenProject loads the project at path and records it in cfg's recent projects.
func (s *Store) OpenProject(path string, cfg *model.AppConfig) (model.Project, error) {
	p, err := LoadProject(path)
	if err != nil {
		s.logger.Error("failed to open project", zap.String("path", path), zap.Error(err))
		return model.Project{}, err
	}
	s.logger.Info("opened project", zap.String("path", path), zap.Int("rooms", len(p.Rooms)))
	s.remember(path, cfg)
	return p, nil
}

func (s *Store) remember(path string, cfg *model.AppConfig) {
	if cfg == nil {
		return
	}
	cfg.AddRecentProject(path, maxRecentProjects)
	if err := SaveAppConfig(s.ConfigPath(), *cfg); err != nil {
		s.logger.Warn("failed to update recent projects", zap.Error(err))
	}
}
