package render

// Test-only bridge into the luminance mapping.

var ExportedGray = gray
