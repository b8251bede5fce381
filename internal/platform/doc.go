package platform

// Package platform contains OS integration glue: output directory helpers
// and revealing or opening saved images with the system's own tools.
