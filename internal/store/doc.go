// Package store moves pixel grids between disk and memory.
//
// ImageFileStore decodes PNG, BMP, TIFF, QOI, JPEG and GIF covers into
// domain.Grid values and writes grids back out in lossless formats only,
// chosen by file extension. Writes go through a temp file and a rename so a
// failed save never leaves a truncated image behind.
package store
