package pdf

import (
	"bytes"
	"encoding/base64"
	"image"
	"os"
	"strings"

	// Decoders needed by image.DecodeConfig for payload validation.
	_ "image/jpeg"
	_ "image/png"
)

// imageAsset is a validated image payload ready for embedding.
type imageAsset struct {
	data   []byte
	format string // "JPEG" or "PNG"
}

// assetResult reports whether an optional image could be loaded. A
// missing or undecodable image is not an error: the renderer draws a
// placeholder instead and the document still completes.
type assetResult struct {
	asset imageAsset
	ok    bool
}

// loadLogo reads the company logo from its fixed path.
func loadLogo(path string) assetResult {
	if path == "" {
		return assetResult{}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return assetResult{}
	}
	return validateImage(raw)
}

const base64Marker = ";base64,"

// decodeDataURI decodes a base64 data URI as produced by the editing
// surface's image uploader.
func decodeDataURI(uri string) assetResult {
	if !strings.HasPrefix(uri, "data:image/") {
		return assetResult{}
	}
	idx := strings.Index(uri, base64Marker)
	if idx < 0 {
		return assetResult{}
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(base64Marker):])
	if err != nil {
		return assetResult{}
	}
	return validateImage(raw)
}

// validateImage checks the payload before it ever reaches the PDF
// writer. A bad image registered with the writer would put the whole
// document into an error state, while a validation failure here only
// costs a placeholder.
func validateImage(raw []byte) assetResult {
	cfg, kind, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return assetResult{}
	}
	switch kind {
	case "jpeg":
		return assetResult{asset: imageAsset{data: raw, format: "JPEG"}, ok: true}
	case "png":
		return assetResult{asset: imageAsset{data: raw, format: "PNG"}, ok: true}
	}
	return assetResult{}
}
