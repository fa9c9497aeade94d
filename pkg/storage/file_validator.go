package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the accepted CV document types.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},        // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
	".txt":  {},                                                         // no magic bytes
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateCVFile checks the extension whitelist, verifies the content's magic
// bytes match the extension, and rejects MIME types outside the document
// whitelist. Returns the normalized extension on success.
func ValidateCVFile(filename string, data []byte, declaredMIME string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", false
	}

	if ext != ".txt" && !matchesMagicBytes(ext, data) {
		return "", false
	}

	mime := declaredMIME
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(strings.ToLower(mime))

	// octet-stream is only acceptable for Office documents that already
	// passed the magic byte check.
	if mime == "application/octet-stream" {
		return ext, ext == ".doc" || ext == ".docx"
	}
	if mime != "" && !allowedMIMETypes[mime] {
		return "", false
	}

	return ext, true
}

func matchesMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
