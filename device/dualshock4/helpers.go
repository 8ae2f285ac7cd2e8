package dualshock4

import "math"

// GyroDpsToRaw converts an angular velocity in °/s to its fixed point form.
func GyroDpsToRaw(dps float64) int16 {
	return clampI16(math.Round(dps * GyroCountsPerDps))
}

// GyroRawToDps converts a fixed point gyro value to °/s.
func GyroRawToDps(raw int16) float64 {
	return float64(raw) / GyroCountsPerDps
}

// AccelMS2ToRaw converts an acceleration in m/s² to its fixed point form.
func AccelMS2ToRaw(ms2 float64) int16 {
	return clampI16(math.Round(ms2 * AccelCountsPerMS2))
}

// AccelRawToMS2 converts a fixed point accelerometer value to m/s².
func AccelRawToMS2(raw int16) float64 {
	return float64(raw) / AccelCountsPerMS2
}

// NormalizeStick maps a raw stick value to [-1, 1].
func NormalizeStick(v int8) float64 {
	return math.Max(-1, float64(v)/math.MaxInt8)
}

// NormalizeTrigger maps a raw trigger value to [0, 1].
func NormalizeTrigger(v uint8) float64 {
	return float64(v) / math.MaxUint8
}

func clampI16(v float64) int16 {
	return int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, v)))
}

func rawStick(v float64) int8 {
	return int8(math.Round(v * math.MaxInt8))
}

func rawUnit(v float64) uint8 {
	return uint8(math.Round(v * math.MaxUint8))
}
