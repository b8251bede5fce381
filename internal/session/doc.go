package session

// Package session holds the single in-memory generation state of the
// application: validate → encode → remember, and save on request. It is
// driven synchronously by one owner (the UI event handler or a CLI command).
