package encode

// Package encode validates identifiers and renders them as QR codes
// (github.com/skip2/go-qrcode) or Code128 barcodes (github.com/boombuler/barcode).
// Encoding and error correction are left to those libraries; this package only
// fixes the geometry of the produced raster.
