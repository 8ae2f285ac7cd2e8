// Package registry registers every built-in device type with the device
// registry. Import it for its side effects.
package registry

import (
	_ "github.com/Alia5/inputmap/device/dualshock4" // Register dualshock4 device type
	_ "github.com/Alia5/inputmap/device/keyboard"   // Register keyboard device type
	_ "github.com/Alia5/inputmap/device/mouse"      // Register mouse device type
	_ "github.com/Alia5/inputmap/device/spatial"    // Register tracker, hand, eye and room-scale device types
	_ "github.com/Alia5/inputmap/device/system"     // Register system device type
	_ "github.com/Alia5/inputmap/device/textinput"  // Register text input device type
	_ "github.com/Alia5/inputmap/device/xbox360"    // Register xbox360 device type
)
