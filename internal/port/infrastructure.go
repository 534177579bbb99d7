// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"net"

	"github.com/vishvananda/netlink"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/infrastructure.go -package=mock

// CommandRunner is a port for invoking external system commands.
// Every provisioning step that shells out goes through this interface.
type CommandRunner interface {
	// Run executes a command and returns an error on nonzero exit
	Run(name string, args ...string) error

	// RunEnv executes a command with extra environment variables appended
	// to the current environment
	RunEnv(extraEnv []string, name string, args ...string) error

	// Output executes a command and returns its standard output
	Output(name string, args ...string) ([]byte, error)
}

// NetworkManager is a port for route and interface inspection.
// This interface abstracts netlink operations for egress detection.
type NetworkManager interface {
	// RouteGet returns the routes the kernel would use to reach dst
	RouteGet(dst net.IP) ([]netlink.Route, error)

	// LinkByIndex returns a network link by interface index
	LinkByIndex(index int) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// BackupFile copies a file to a timestamped sibling and returns the
	// backup path
	BackupFile(filename string) (string, error)

	// Chmod changes the permissions of a file
	Chmod(filename string, perm int) error

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string, perm int) error
}
