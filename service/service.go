package service

// Service is the lifecycle of a long-lived sandbox subsystem: content pipeline, audio backend
//
// Lifecycle:
//  1. Construction
//  2. Init() - load configuration and data, fail fast on bad input
//  3. Start() - open devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - release resources, idempotent
//
// The simulation itself is not a service; it never depends on one
type Service interface {
	Name() string

	// Dependencies names services that must Init and Start first
	Dependencies() []string

	Init() error
	Start() error
	Stop() error
}
