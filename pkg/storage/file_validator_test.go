package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCVFile(t *testing.T) {
	pdf := append([]byte("%PDF-1.7"), make([]byte, 64)...)

	t.Run("Accepts a real PDF", func(t *testing.T) {
		ext, ok := ValidateCVFile("resume.pdf", pdf, "application/pdf")
		assert.True(t, ok)
		assert.Equal(t, ".pdf", ext)
	})

	t.Run("Rejects spoofed extension", func(t *testing.T) {
		exe := append([]byte{0x4D, 0x5A}, make([]byte, 64)...) // MZ header
		_, ok := ValidateCVFile("resume.pdf", exe, "application/pdf")
		assert.False(t, ok)
	})

	t.Run("Rejects disallowed extensions", func(t *testing.T) {
		_, ok := ValidateCVFile("resume.exe", pdf, "application/pdf")
		assert.False(t, ok)

		_, ok = ValidateCVFile("resume", pdf, "application/pdf")
		assert.False(t, ok)
	})

	t.Run("Text files skip magic bytes", func(t *testing.T) {
		ext, ok := ValidateCVFile("resume.txt", []byte("plain text resume"), "text/plain")
		assert.True(t, ok)
		assert.Equal(t, ".txt", ext)
	})

	t.Run("octet-stream only allowed for Office documents", func(t *testing.T) {
		docx := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 64)...)
		_, ok := ValidateCVFile("resume.docx", docx, "application/octet-stream")
		assert.True(t, ok)

		_, ok = ValidateCVFile("resume.pdf", pdf, "application/octet-stream")
		assert.False(t, ok)
	})

	t.Run("Content type parameters are ignored", func(t *testing.T) {
		_, ok := ValidateCVFile("resume.txt", []byte("text"), "text/plain; charset=utf-8")
		assert.True(t, ok)
	})
}
