//go:build windows

package util

import (
	"log/slog"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

var shells = map[string]bool{
	"cmd.exe":             true,
	"powershell.exe":      true,
	"pwsh.exe":            true,
	"wt.exe":              true,
	"conhost.exe":         true,
	"windowsterminal.exe": true,
}

// IsRunFromGUI reports whether the process has no console or was launched
// by Explorer rather than a shell.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}
	parent := parentProcessName()
	slog.Debug("Parent process", "name", parent)
	if shells[strings.ToLower(parent)] {
		return false
	}
	return strings.EqualFold(parent, "explorer.exe")
}

func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	self, ok := findProcess(snapshot, uint32(os.Getpid()))
	if !ok || self.ParentProcessID == 0 {
		return ""
	}
	parent, ok := findProcess(snapshot, self.ParentProcessID)
	if !ok {
		return ""
	}
	return windows.UTF16ToString(parent.ExeFile[:])
}

func findProcess(snapshot windows.Handle, pid uint32) (windows.ProcessEntry32, bool) {
	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	for err := windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if pe.ProcessID == pid {
			return pe, true
		}
	}
	return pe, false
}
