//go:build !windows

package platform

func UserStartupFolder() string   { return "" }
func CommonStartupFolder() string { return "" }
func SystemRoot() string          { return "" }
func System32Directory() string   { return "" }

func UnderWindowsDirectory(path string) bool { return false }
