package content

import "log"

// Service loads the catalog once at startup for the sandbox service hub
type Service struct {
	manager *Manager
	catalog *Catalog
}

// NewService creates a content service reading overrides from dir
func NewService(dir string) *Service {
	return &Service{manager: NewManager(dir)}
}

func (s *Service) Name() string           { return "content" }
func (s *Service) Dependencies() []string { return nil }

// Init discovers and loads content; any invalid file fails startup
func (s *Service) Init() error {
	if err := s.manager.Discover(); err != nil {
		return err
	}
	cat, err := s.manager.Load()
	if err != nil {
		return err
	}
	s.catalog = cat
	log.Printf("Content loaded: %d abilities, %d files", len(cat.IDs()), len(s.manager.Files()))
	return nil
}

func (s *Service) Start() error { return nil }
func (s *Service) Stop() error  { return nil }

// Catalog returns the loaded catalog, nil before Init
func (s *Service) Catalog() *Catalog { return s.catalog }
