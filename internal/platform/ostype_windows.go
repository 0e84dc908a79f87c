//go:build windows

package platform

func osType() string {
	return "Windows_NT"
}
