package errors

// ValidateCellSize validates the pixel edge length used to scale one matrix
// cell. Every encoder that takes a cell size shares this check so the
// failure mode is uniform across raster and vector output.
func ValidateCellSize(size int) error {
	if size <= 0 {
		return New(ErrCodeInvalidParameter, "cell size must be positive, got %d", size)
	}
	return nil
}

// ValidateQuietZone validates the reserved blank margin width around the
// symbol. Zero is the supported default; negative margins would corrupt the
// border sizing arithmetic.
func ValidateQuietZone(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidParameter, "quiet zone must not be negative, got %d", width)
	}
	return nil
}
