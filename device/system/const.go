package system

import "github.com/Alia5/inputmap/device"

// Inputs of the system device. They can change during a session.
const (
	LidState device.InputID = iota
	OnBattery
	BatteryCharge
	Docked
	Sleep
	Background
	GracefulShutdown
	ImmediateShutdown
	DebugBreak
	DisplayChange
	StereographyRequested
	TakeScreenshot
	StartRecording
	StopRecording
	CopyToClipboard
	CutToClipboard
	Play
	Pause
	Stop
	NextTrack
	PrevTrack
	FastForward
	Rewind
	Mute
	VolumeUp
	VolumeDown

	CPUTemperature
	CPUFanUtilization
	CPUUtilization
	GPUTemperature
	GPUUtilization
	GPUFanUtilization
	ChassisFanUtilization

	InternetConnected
	WirelessNetworkStrength
	NetworkConnectionMetered

	InputCount
)

var inputNames = [InputCount]string{
	"Lid State", "On Battery", "Battery Charge", "Docked", "Sleep", "Background",
	"Graceful Shutdown", "Immediate Shutdown", "Debug Break", "Display Change",
	"Stereography Requested", "Take Screenshot", "Start Recording", "Stop Recording",
	"Copy To Clipboard", "Cut To Clipboard",
	"Play", "Pause", "Stop", "Next Track", "Previous Track", "Fast Forward", "Rewind",
	"Mute", "Volume Up", "Volume Down",
	"CPU Temperature", "CPU Fan Utilization", "CPU Utilization",
	"GPU Temperature", "GPU Utilization", "GPU Fan Utilization", "Chassis Fan Utilization",
	"Internet Connected", "Wireless Network Strength", "Network Connection Metered",
}

// Config is a system setting that is usually static per session.
type Config int

const (
	PreferredUIScale Config = iota
	PrimaryAccentColor
	SecondaryAccentColor
	KeyRepeatFrequency
	KeyRepeatDelay
	DPI
	PreferredTextSize
	// LimitAnimations ranges from 0 (minimal animations) to 1 (full animations).
	LimitAnimations
	AdminPrivileges
	ChassisFanCount

	ConfigCount
)

var configNames = [ConfigCount]string{
	"Preferred UI Scale", "Primary Accent Color", "Secondary Accent Color",
	"Key Repeat Frequency", "Key Repeat Delay", "DPI", "Preferred Text Size",
	"Limit Animations", "Admin Privileges", "Chassis Fan Count",
}

func (c Config) String() string {
	if c < 0 || c >= ConfigCount {
		return "Config(?)"
	}
	return configNames[c]
}

// ColorblindnessType is the color vision filter the user asked for.
type ColorblindnessType int

const (
	ColorblindnessNone ColorblindnessType = iota
	RedGreenDeuteranopia
	RedGreenProtanopia
	BlueYellowTritanopia
	Grayscale
	GrayscaleInverted
	Inverted
)

// ConfigFlag is a boolean accessibility or appearance preference.
type ConfigFlag uint8

const (
	DarkMode ConfigFlag = 1 << iota
	PreferDyslexiaFriendlyFont
	// LimitFlashing is requested for photosensitive users.
	LimitFlashing
	IncreasePointerSize
	HighContrast
)

func (f ConfigFlag) Has(o ConfigFlag) bool { return f&o == o }

// BiometricInput ids follow the HID sensor page usages.
type BiometricInput int

const (
	HumanPresence BiometricInput = iota + 0x11
	HumanProximity
	HumanTouch
	BloodPressure
	BodyTemperature
	HeartRate
	HeartRateVariability
	PeripheralOxygenSaturation
	RespiratoryRate
)
