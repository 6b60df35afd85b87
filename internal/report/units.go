package report

// Measurement systems used by the source model. Report geometry is always in
// hundredths of an inch.
const (
	TwipsPerInch         = 1440
	DocumentUnitsPerInch = 300
	PixelsPerInch        = 96
	HundredthsPerInch    = 100
)

// FromTwips converts twips to hundredths of an inch.
func FromTwips(v int) float64 {
	return float64(v) * HundredthsPerInch / TwipsPerInch
}

// FromDocument converts document units (1/300 inch) to hundredths of an inch.
func FromDocument(v int) float64 {
	return float64(v) * HundredthsPerInch / DocumentUnitsPerInch
}

// FromPixels converts pixels at 96 DPI to hundredths of an inch.
func FromPixels(v int) float64 {
	return float64(v) * HundredthsPerInch / PixelsPerInch
}
