// Package pixel has the per-channel colour math shared by the filters.
// Colours are RGBA byte quadruples; alpha is never changed here.
package pixel

import "math"

// ClampByte stores a channel value the way a clamped byte canvas does:
// clamp to 0..255 and round half to even. NaN becomes 0.
func ClampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// Brightness scales R, G and B by intensity.
func Brightness(c [4]uint8, intensity float64) [4]uint8 {
	return [4]uint8{
		ClampByte(float64(c[0]) * intensity),
		ClampByte(float64(c[1]) * intensity),
		ClampByte(float64(c[2]) * intensity),
		c[3],
	}
}

// Average is the unweighted mean of R, G and B.
func Average(c [4]uint8) float64 {
	return (float64(c[0]) + float64(c[1]) + float64(c[2])) / 3
}

// Grayscale moves each channel towards the RGB average by intensity;
// 0 leaves the colour alone and 1 makes it fully gray.
func Grayscale(c [4]uint8, intensity float64) [4]uint8 {
	avg := Average(c)
	mix := func(v uint8) uint8 {
		return ClampByte(float64(v)*(1-intensity) + avg*intensity)
	}
	return [4]uint8{mix(c[0]), mix(c[1]), mix(c[2]), c[3]}
}

// Blend mixes two channel values, t=0 giving a and t=1 giving b.
func Blend(a, b uint8, t float64) uint8 {
	return ClampByte(float64(a)*(1-t) + float64(b)*t)
}

// Normalize returns R, G and B scaled to 0..1.
func Normalize(c [4]uint8) [3]float64 {
	return [3]float64{
		float64(c[0]) / 255,
		float64(c[1]) / 255,
		float64(c[2]) / 255,
	}
}

// Read returns the four bytes at i in buf.
func Read(buf []uint8, i int) [4]uint8 {
	return [4]uint8{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

// WriteRGB stores R, G and B of c at i in buf, leaving alpha.
func WriteRGB(buf []uint8, i int, c [4]uint8) {
	buf[i] = c[0]
	buf[i+1] = c[1]
	buf[i+2] = c[2]
}
