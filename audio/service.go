package audio

import "log"

// Name implements service.Service
func (p *CuePlayer) Name() string { return "audio" }

// Dependencies implements service.Service
func (p *CuePlayer) Dependencies() []string { return nil }

// Init implements service.Service; configuration is fixed at construction
func (p *CuePlayer) Init() error { return nil }

// Start opens the speaker; a missing device mutes the player instead of failing
func (p *CuePlayer) Start() error {
	if !p.cfg.Enabled {
		return nil
	}
	if err := p.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		p.SetMuted(true)
	}
	return nil
}

// Stop implements service.Service
func (p *CuePlayer) Stop() error {
	p.Cleanup()
	return nil
}
