//go:build windows

package basalt

import "golang.org/x/sys/windows"

// libraryCandidates returns the DLL names probed for SDL2.
func libraryCandidates() []string {
	return []string{"SDL2.dll"}
}

func openLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
