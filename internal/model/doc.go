package model

// Package model defines the domain data structures shared by the session,
// the encoders and the UI: code kinds, generated codes and session states.
// Values are plain structs so the UI can render them directly.
