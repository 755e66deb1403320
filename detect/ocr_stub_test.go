//go:build !ocr

package detect

import (
	"errors"
	"testing"
)

func TestNewOCRDetectorReturnsError(t *testing.T) {
	d, err := NewOCRDetector()
	if err == nil {
		t.Error("Expected error from NewOCRDetector() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if d != nil {
		t.Error("Expected nil detector when OCR is disabled")
	}
}

func TestOCRStubCloseOnNilDetector(t *testing.T) {
	var d *OCRDetector
	if err := d.Close(); err != nil {
		t.Errorf("Close on nil detector should not error: %v", err)
	}
}

func TestOCRStubDetect(t *testing.T) {
	d := &OCRDetector{}
	if _, err := d.Detect(PageImage{}); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Detect() error = %v, want ErrOCRNotEnabled", err)
	}
}
