// Package raster recovers the raster pages embedded in PCL print job
// streams, as produced by Brother monochrome laser drivers. It scans
// the stream for <ESC>*b escape sequences, decodes the delta-row
// compressed graphics data (compression method 1030) and hands back
// one page at a time as a sequence of 1-bit-per-pixel rows.
package raster
