package errors

import (
	"testing"
)

func TestValidateCellSize(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{1, false},
		{5, false},
		{100, false},
		{0, true},
		{-1, true},
		{-100, true},
	}

	for _, tt := range tests {
		err := ValidateCellSize(tt.size)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCellSize(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidParameter) {
			t.Errorf("ValidateCellSize(%d) code = %v, want %v", tt.size, GetCode(err), ErrCodeInvalidParameter)
		}
	}
}

func TestValidateQuietZone(t *testing.T) {
	tests := []struct {
		width   int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{4, false},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateQuietZone(tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateQuietZone(%d) error = %v, wantErr %v", tt.width, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidParameter) {
			t.Errorf("ValidateQuietZone(%d) code = %v, want %v", tt.width, GetCode(err), ErrCodeInvalidParameter)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidLayout,
		ErrCodeInvalidParameter,
		ErrCodeInvalidFormat,
		ErrCodeInvalidDocument,
		ErrCodeUnsupportedFormat,
		ErrCodeParse,
		ErrCodeFileNotFound,
		ErrCodeIO,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
